// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error classes, error instances and last-gasp logging
//
// Each error is a single typed instance so callers compare with ==
// or test the class with the IsErrXxx functions instead of matching
// message text.  The Panic family writes to the "PANIC" log channel
// before aborting.
package fault
