// Package compiler implements the imp procedure-declaration language:
// a scanner, a recursive-descent parser that builds a call graph of
// procedures, and a code generator that targets x86-64 NASM assembly.
//
// Pipeline: imp source → Scan → Parse → Generate → NASM assembly text
package compiler
