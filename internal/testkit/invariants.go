// Package testkit holds checks shared by parser and formatter tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cssfmt/internal/ast"
	"cssfmt/internal/source"
)

// CheckSpanInvariants walks a parsed stylesheet and verifies its spans:
// every node belongs to sf, statements are non-empty and lie inside their
// parent, blocks and preludes lie inside the statement that owns them.
func CheckSpanInvariants(sheet *ast.Stylesheet, sf *source.File) error {
	if sheet == nil || sf == nil {
		return fmt.Errorf("nil stylesheet or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := sheet.Span()
	if root.File != sf.ID {
		return fmt.Errorf("stylesheet span points to different file id: got=%d want=%d", root.File, sf.ID)
	}
	if root.Start > root.End || root.End > lenContent {
		return fmt.Errorf("stylesheet span %v is outside content of %d bytes", root, lenContent)
	}
	return checkStatements(sheet.Statements, root, sf.ID)
}

func checkStatements(stmts []ast.Statement, parent source.Span, id source.FileID) error {
	for _, st := range stmts {
		if st == nil {
			return fmt.Errorf("nil statement inside %v", parent)
		}
		sp := st.Span()
		if err := within(sp, parent, id); err != nil {
			return fmt.Errorf("%T: %w", st, err)
		}
		if sp.Empty() {
			return fmt.Errorf("%T: empty span %v", st, sp)
		}

		var block *ast.Block
		switch n := st.(type) {
		case *ast.AtRule:
			if n.Name != nil {
				if err := within(n.Name.Span(), sp, id); err != nil {
					return fmt.Errorf("@%s name: %w", n.Name.Name, err)
				}
			}
			if n.Prelude != nil && !n.Prelude.Span().Empty() {
				if err := within(n.Prelude.Span(), sp, id); err != nil {
					return fmt.Errorf("%s prelude: %w", n.Prelude.Kind(), err)
				}
			}
			block = n.Block
		case *ast.QualifiedRule:
			if n.Selectors != nil {
				if err := within(n.Selectors.Span(), sp, id); err != nil {
					return fmt.Errorf("selectors: %w", err)
				}
			}
			block = n.Block
		case *ast.KeyframeBlock:
			block = n.Block
		case *ast.Declaration:
			if n.Value != nil && !n.Value.Span().Empty() {
				if err := within(n.Value.Span(), sp, id); err != nil {
					return fmt.Errorf("%s value: %w", n.Name, err)
				}
			}
		}
		if block == nil {
			continue
		}
		if err := within(block.Span(), sp, id); err != nil {
			return fmt.Errorf("%T block: %w", st, err)
		}
		if err := checkStatements(block.Statements, block.Span(), id); err != nil {
			return err
		}
	}
	return nil
}

func within(sp, parent source.Span, id source.FileID) error {
	if sp.File != id {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, id)
	}
	if sp.Start > sp.End {
		return fmt.Errorf("inverted span %v", sp)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("span %v is outside %v", sp, parent)
	}
	return nil
}
