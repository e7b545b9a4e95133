/*
Package output turns resolved entries into the bytes symdex prints.

An Encoder is built once per invocation in one of three modes:

  - Plain: a user template rendered once per entry, newline terminated
  - Summary: the built-in summary template, optionally with coloured kinds
  - Sexp: a single s-expression list for editor integrations

Asking for an s-expression and a custom template at the same time is a
USAGE error, reported by New before any index is opened.

# S-expression layout

	(
	(:path "List.map" :full-path "Stdlib.List.map" :type "..." :kind "val" :doc "...")
	)

:doc appears only for entries that have documentation. Strings escape '\'
and '"' with a backslash and write newline and tab as \n and \t. DecodeSexp
reads the layout back into records.
*/
package output
