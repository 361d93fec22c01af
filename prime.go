// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package qmc

// PrimeImplicants returns the terms of gs that were never merged, in
// generation order, then insertion order within a generation.
//
func PrimeImplicants(gs Generations) []*Term {
	var pis []*Term
	for _, g := range gs {
		for _, t := range g {
			if !t.Used {
				pis = append(pis, t)
			}
		}
	}
	return pis
}
