/*
Package charclass renders sets of Unicode scalar values as regular expression
character classes.

Description

Given any set of code-point ranges, charclass finds the shortest canonical
character class matching exactly that set:

  [a-z]                    explicit ranges
  [^\u{0000}-\u{001f}]     the complement, if it needs fewer ranges
  \p{ASCII_Hex_Digit}      a named Unicode class
  \P{Cc}                   the complement of a named Unicode class
  \d \s \w \D \S \W        Perl shorthand classes
  \n \r \t \v              single control characters
  .                        every scalar value
  []                       no scalar value at all

Sets are built from integer or rune ranges with arbitrary bounds (inclusive,
exclusive, unbounded), and code-point arithmetic always skips the UTF-16
surrogate gap U+D800…U+DFFF: a set reaching from U+D7FF to U+E000 holds two
adjacent values.

Typical Usage

  set := charclass.FromRangeRunes(charclass.Closed('a', 'z'))
  fmt.Println(charclass.Cardinality(set)) // 26
  fmt.Println(charclass.ToRegex(set))     // [a-z]

Named classes are looked up in the catalog of package catalog. The default
catalog is set up on first use; clients who want to pay for it beforehand may
call catalog.SetupCatalog().

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package charclass

import "github.com/npillmayer/charclass/internal/tracing"

// T traces to a global core tracer
func T() tracing.Trace {
	return tracing.Core()
}
