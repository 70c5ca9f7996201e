package syntax

// Static language tables. The registry is read-only after init; Select hands
// out shared pointers, never copies.
var registry = []*Syntax{cSyntax, goSyntax, rustSyntax, pythonSyntax}

var cSyntax = &Syntax{
	Lang: LangC,
	Exts: []string{"c", "h", "cpp", "hpp", "cc"},
	Keywords: []string{
		"auto", "const", "enum", "extern", "inline", "register", "restrict",
		"sizeof", "static", "struct", "typedef", "union", "volatile",
	},
	Flowwords: []string{
		"break", "case", "continue", "default", "do", "else", "for", "goto",
		"if", "return", "switch", "while",
	},
	Types: []string{
		"char", "double", "float", "int", "long", "short", "signed",
		"unsigned", "void", "size_t", "int8_t", "int16_t", "int32_t",
		"int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t", "bool",
	},
	Metawords: []string{
		"#include", "#define", "#undef", "#ifdef", "#ifndef", "#if",
		"#else", "#elif", "#endif", "#pragma", "#error",
	},
	PathSeps:     []string{"::", "->"},
	LineComment:  "//",
	BlockComment: [2]string{"/*", "*/"},
	Flags:        HighlightNumbers | HighlightStrings | HighlightIdents,
}

var goSyntax = &Syntax{
	Lang: LangGo,
	Exts: []string{"go"},
	Keywords: []string{
		"chan", "const", "defer", "func", "go", "import", "interface",
		"map", "package", "range", "struct", "type", "var",
	},
	Flowwords: []string{
		"break", "case", "continue", "default", "else", "fallthrough",
		"for", "goto", "if", "return", "select", "switch",
	},
	Types: []string{
		"bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"any",
	},
	Metawords:    []string{"nil", "true", "false", "iota"},
	PathSeps:     []string{"."},
	LineComment:  "//",
	BlockComment: [2]string{"/*", "*/"},
	Flags:        HighlightNumbers | HighlightStrings | HighlightIdents | CapitalTypes,
}

var rustSyntax = &Syntax{
	Lang: LangRust,
	Exts: []string{"rs"},
	Keywords: []string{
		"as", "const", "crate", "dyn", "enum", "extern", "fn", "impl",
		"let", "mod", "move", "mut", "pub", "ref", "static", "struct",
		"trait", "type", "union", "unsafe", "use", "where",
	},
	Flowwords: []string{
		"break", "continue", "else", "for", "if", "in", "loop", "match",
		"return", "while", "yield",
	},
	Types: []string{
		"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128",
		"isize", "str", "u8", "u16", "u32", "u64", "u128", "usize",
		"String", "Vec", "Option", "Result", "Box",
	},
	Metawords:    []string{"self", "Self", "super", "true", "false"},
	PathSeps:     []string{"::"},
	LineComment:  "//",
	BlockComment: [2]string{"/*", "*/"},
	Flags: HighlightNumbers | HighlightStrings | HighlightIdents |
		NestedComments | CapitalTypes,
}

var pythonSyntax = &Syntax{
	Lang: LangPython,
	Exts: []string{"py"},
	Keywords: []string{
		"and", "as", "assert", "async", "await", "class", "def", "del",
		"global", "import", "in", "is", "lambda", "nonlocal", "not", "or",
		"with",
	},
	Flowwords: []string{
		"break", "continue", "elif", "else", "except", "finally", "for",
		"from", "if", "pass", "raise", "return", "try", "while", "yield",
	},
	Types: []string{
		"bool", "bytes", "complex", "dict", "float", "frozenset", "int",
		"list", "object", "set", "str", "tuple",
	},
	Metawords:   []string{"None", "True", "False", "self"},
	PathSeps:    []string{"."},
	LineComment: "#",
	Flags:       HighlightNumbers | HighlightStrings | HighlightIdents,
}
