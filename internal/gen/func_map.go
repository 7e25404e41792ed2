package gen

import (
	"text/template"
)

var funcMap = template.FuncMap{
	"namedImport": namedImport,
}
