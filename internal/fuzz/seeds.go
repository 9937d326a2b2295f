package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB - ограничение и для корпуса, и для входа фаззера

var inlineSeeds = []string{
	"",
	"a{color:red}",
	"@charset \"utf-8\";",
	"@import url(\"a.css\") layer(base) supports(display:grid) screen and (min-width:100px);",
	"@media screen and (min-width: 100px), print and (orientation:landscape) { a { b: c } }",
	"@media (400px <= width <= 700px) { a { b: c } }",
	"@supports not (display: grid) { a { float: left } }",
	"@supports selector(:has(a)) and (display: flex) {}",
	"@container sidebar (min-width: 400px) { .card { display: grid } }",
	"@keyframes spin { FROM { x: 0 } 50% { x: 1 } to { x: 2 } }",
	"@layer reset, base, components;",
	"@layer base { html { color: black } }",
	"@namespace svg url(http://www.w3.org/2000/svg);",
	"@page :first { margin: 1in; @top-left { content: \"x\" } }",
	"@font-feature-values Font One, \"Font Two\" { @styleset { nice-style: 12; } }",
	"@property --x { syntax: '<length>'; inherits: false; initial-value: 0px; }",
	"@custom-media --narrow (max-width: 30em);",
	"@color-profile --swop5c { src: url(a.icc); }",
	"@document url(http://a.b), url-prefix(\"http://c\") { a { b: c } }",
	"@include mixin($a, $b);",
	"@each $name in a, b { .icon-#{$name} { x: y } }",
	"@media #{$query} and (min-width: $w) { a { b: c } }",
	"@tailwind base;",
	"a{color:red",
	"@media (min-width: { }",
	"\"unterminated",
	"/* unclosed comment",
	"@",
	"{{{{}}}}",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет стили из testdata, если каталог есть.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".css", ".scss", ".less":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
