package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// evaluate runs a Starlark expression with the given integer constants in
// scope, and returns its integer result.
func evaluate(expr string, defines map[string]int64) (value int64, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, len(defines))
	for key, val := range defines {
		pred[key] = starlark.MakeInt64(val)
	}

	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", "rc = "+expr+"\n", pred)
	if err != nil {
		return
	}

	st_rc := dict["rc"]
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpressionValue(st_rc.Type())
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpressionValue("bigint")
		return
	}

	return
}

// expand replaces every $(...) in a line with its decimal value.
func expand(line string, defines map[string]int64) (out string, err error) {
	out = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := evaluate(str[2:len(str)-1], defines)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}
