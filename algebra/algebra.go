// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/clifford/signature"
)

// ErrUnknownAlgebra indicates Lookup did not recognise the name.
var ErrUnknownAlgebra = errors.New("algebra: unknown algebra")

// STA is the spacetime algebra Cl(1,3,0).
var STA = signature.Must(1, 3, 0)

// VGA returns Cl(d,0,0). d must leave room under blade.MaxDim.
func VGA(d int) (signature.Signature, error) { return signature.New(d, 0, 0) }

// CGA returns Cl(d,1,0).
func CGA(d int) (signature.Signature, error) { return signature.New(d, 1, 0) }

// PGA returns Cl(d,0,1).
func PGA(d int) (signature.Signature, error) { return signature.New(d, 0, 1) }

// Complex returns Cl(0,1,0).
func Complex() signature.Signature { return signature.Must(0, 1, 0) }

// Dual returns Cl(0,0,1).
func Dual() signature.Signature { return signature.Must(0, 0, 1) }

// Hyperbolic returns Cl(1,0,0), the split-complex numbers, not the reals
// Cl(0,0,0).
func Hyperbolic() signature.Signature { return signature.Must(1, 0, 0) }

// Quaternion returns Cl(0,2,0), not the split-quaternions Cl(1,1,0).
func Quaternion() signature.Signature { return signature.Must(0, 2, 0) }

// fixed maps the parameterless names.
var fixed = map[string]func() signature.Signature{
	"sta":        func() signature.Signature { return STA },
	"complex":    Complex,
	"dual":       Dual,
	"hyperbolic": Hyperbolic,
	"quaternion": Quaternion,
}

// families maps the dimension-parameterised prefixes.
var families = map[string]func(int) (signature.Signature, error){
	"vga": VGA,
	"cga": CGA,
	"pga": PGA,
}

// Names returns the accepted fixed names and family patterns, sorted.
func Names() []string {
	return []string{"Cl(p,q,r)", "cga<d>", "complex", "dual", "hyperbolic", "pga<d>", "quaternion", "sta", "vga<d>"}
}

// Lookup resolves name to a signature. Accepted forms: the fixed names above,
// a family prefix followed by a dimension ("pga3"), or "Cl(p,q,r)".
// Matching is case-insensitive.
func Lookup(name string) (signature.Signature, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fixed[key]; ok {
		return f(), nil
	}
	if strings.HasPrefix(key, "cl(") {
		return signature.Parse(key)
	}
	if len(key) > 3 {
		if f, ok := families[key[:3]]; ok {
			d, err := strconv.Atoi(key[3:])
			if err == nil {
				return f(d)
			}
		}
	}

	return signature.Signature{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownAlgebra)
}
