// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The script must
// finish with a return of a table, which is mapped onto the caller's
// structure using the "gluamapper" field tags.
//
// the global "arg" table holds the file name as arg[0] and any extra
// variables supplied by the caller by name.
package configuration
