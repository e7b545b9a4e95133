/*
Package format interprets symdex's directive-based format strings.

A template is scanned left to right. A '%' followed by a directive character
is replaced by that directive's projection of the entry; "%%" yields a single
'%'. A '%' followed by any other character, or at the end of the template,
is copied as-is, as is every other character.

# Directives

	%n  name         short name (last path segment)
	%q  qualified    path as seen from the open scopes
	%p  full-path    full dotted path
	%k  kind         type, val, exception, field(<owner>), constr(<owner>),
	                 method(<owner>), module, modtype, class, classtype, keyword
	%t  type         type signature
	%d  doc          documentation, or empty
	%l  loc-impl     implementation location, or empty
	%s  loc-sig      signature location, or empty
	%f  source-file  originating compiled artifact
	%i  summary      name, kind and truncated type
	%%  percent      a literal '%'

The table is a stable contract: editor integrations embed these templates.

Directives backed by lazily computed entry fields (%t, %d, %l, %s, %i) only
force those fields when the directive is actually reached, so a template such
as "%q %k" never parses signatures, docs or locations.
*/
package format
