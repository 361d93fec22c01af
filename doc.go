/*
Package qmc minimizes Boolean functions given as a sum of minterms using the
Quine-McCluskey method.

Minimization runs in two phases. First, the minterms are classified into bit
patterns (generation 0) and terms that differ in exactly one bit are merged,
generation after generation, until no more merges are possible. Terms never
merged are the prime implicants. Second, a coverage matrix of prime implicants
× minterms is reduced: essential prime implicants are selected first, then the
remaining minterms are covered greedily.

	res, err := qmc.Minimize([]int{0, 4, 5, 7, 8, 11, 12, 15})
	if err != nil {
		// handle error
	}
	fmt.Println(res.Expression())

Variables are named after the last letters of the alphabet, most significant
bit first: a 3 variable function uses x, y and z. A complemented variable is
followed by an apostrophe (x'). Functions of more than 26 variables use
indexed names x[0], x[1], etc.

The cover selection is a heuristic and does not guarantee a minimum number
of prime implicants. Don't-care terms are not supported.
*/
package qmc
