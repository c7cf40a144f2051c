// Package parser extracts import statements from TypeScript and JavaScript
// sources with a line-oriented heuristic.
//
// The extractor is not a grammar. It recognises
//
//	import { a } from './a'
//	import type { B } from "@/entities/b"
//	import {
//	    c,
//	    d,
//	} from '../shared/c'
//
// and reports the module specifier, the line the statement starts on and the
// raw statement text. Dynamic import(), import.meta, re-exports and template
// literals are ignored. An import line without a from clause, such as a
// side-effect import, opens a statement that runs to the next line holding
// from, so
//
//	import './polyfills'
//	import { a } from './a'
//
// yields a single record for './a' on line 1.
//
// Basic usage:
//
//	for imp := range parser.Imports(source) {
//	    fmt.Println(imp.Line, imp.Source)
//	}
package parser
