// anf prints the Algebraic Normal Form of a Boolean function, given the
// packed truth table of a rule and its number of variables.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/anf"
	"github.com/consensys/anf/logger"
)

var (
	fRule = flag.Uint64("rule", 0, "packed truth table; bit i is the output on assignment i")
	fN    = flag.Int("n", 3, "number of variables (at most 6)")
)

func main() {
	flag.Parse()
	log := logger.Logger()

	coeffs, err := anf.Transform(*fRule, *fN)
	if err != nil {
		log.Error().Err(err).Uint64("rule", *fRule).Int("n", *fN).Msg("invalid truth table")
		os.Exit(1)
	}

	fmt.Printf("rule %d (n=%d) -> anf %d\n", *fRule, *fN, coeffs)
	fmt.Println(monomials(coeffs, *fN))
}

// monomials renders a coefficient table as an XOR of AND-monomials; the
// variables of the monomial at index k are the set bits of k.
func monomials(coeffs uint64, nbVariables int) string {
	var terms []string
	for k := uint64(0); k < 1<<nbVariables; k++ {
		if coeffs>>k&1 == 0 {
			continue
		}
		if k == 0 {
			terms = append(terms, "1")
			continue
		}
		var monomial []string
		for b := 0; b < nbVariables; b++ {
			if k>>b&1 == 1 {
				monomial = append(monomial, fmt.Sprintf("x%d", b))
			}
		}
		terms = append(terms, strings.Join(monomial, "."))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " ^ ")
}
