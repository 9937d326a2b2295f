// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> parser -> format). Its goal is to guard against panics
// and hangs on arbitrary stylesheets.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер, парсер и
// форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
