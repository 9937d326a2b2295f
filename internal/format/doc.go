// Package format converts parsed stylesheets into layout documents
// (internal/doc) and renders them to text.
//
// Every formatter is a method on printer, a per-call value holding the
// immutable options and the first error encountered. No package state is
// shared, so independent stylesheets may be formatted concurrently.
//
// Назначение: at-rule'ы и их прелюдии, блоки, объявления, селекторы.
// Не делает: валидацию CSS, разрешение селекторов, выбор ширины строки.
package format
