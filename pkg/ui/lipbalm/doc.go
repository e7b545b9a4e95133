/*
Package lipbalm renders XML-like style tags into terminal output.

Messages are written with semantic tags whose names are style names:

	<Error>no match</Error> for <Query>List.mop</Query>

# Core Functions

  - Render: executes a text/template, then expands style tags
  - ExpandTags: expands style tags only
  - StripTags: removes every tag, keeping the text
  - Escape: protects dynamic text before it is placed inside a tag

Styling only happens when the package renderer has a colour profile; with
an ASCII profile (pipes, NO_COLOR, --color=never) tags are stripped.

# Special Tags

The <no-format> tag only renders when colour is off:

	<KindVal>val</KindVal><no-format> (value)</no-format>

# Failure handling

Input that does not parse as XML is returned unchanged, and tags without a
matching style render their content unstyled.
*/
package lipbalm
