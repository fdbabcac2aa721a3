/*
Package catalog identifies sets of scalar values as named Unicode classes.

A catalog maps the exact range decomposition of a set to a symbolic name,
taken from Unicode general categories (Lu, Nd, …), boolean properties
(ASCII_Hex_Digit, White_Space, …) and scripts (Greek, Latin, …). Together
with the Perl shorthand classes \d, \s and \w, this lets a renderer emit
`\p{Greek}` or `\W` instead of a long bracket expression.

Matching is strictly structural: a set is identified only if its range list
is identical to the one in the catalog, in count and in every bound. There
is no subset or superset matching.

Typical Usage

	token, ok := catalog.Default().Identify(set)

The default catalog is built from the compiled-in tables of package unicode
on first use. Building is concurrency-safe and happens exactly once;
afterwards the default catalog is frozen and may be read from any number of
goroutines. Clients may build catalogs of their own with New, add classes
loaded from UCD property files, and then use them read-only.

BSD License

Copyright © 2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package catalog

import "github.com/npillmayer/charclass/internal/tracing"

// T traces to a global core tracer
func T() tracing.Trace {
	return tracing.Core()
}
