// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package markov

//go:generate mockgen -destination=mocks/random.go -package=mocks github.com/bitmark-inc/avlset/markov RandomSource

// RandomSource - uniform values in [0.0, 1.0)
//
// *math/rand.Rand satisfies this
type RandomSource interface {
	Float64() float64
}
