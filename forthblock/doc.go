// Copyright Terence J. Boldt (c)2026
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

/*
  Package forthblock provides conversion of text source into the
  1024-byte screen format used by block-structured Forth systems
  and positioned reads/writes of those blocks in drive images.

*/

package forthblock
