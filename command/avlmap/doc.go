// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlmap - replay operation scripts against an AVL tree
//
// the tree starts from the contents of a LevelDB database and each
// script line is applied in order:
//
//   insert KEY VALUE...   add or overwrite, the values are joined by a space
//   delete KEY            remove a key, absent keys are reported
//   find KEY              show the value stored for a key
//   print                 draw the tree
//   check                 verify ordering, links and balance
//   save                  write the tree contents to the database
//   clear                 remove every node
//
// blank lines and lines starting with "#" are ignored.
package main
