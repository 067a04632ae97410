package zmatrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Vector is a dense vector of exact integers. The zero value of an entry is
// never nil: constructors allocate a big.Int per coordinate, and all
// operations return fresh vectors without aliasing their operands.
type Vector []*big.Int

// NewVector returns the zero vector of length n. Panics if n < 0.
func NewVector(n int) Vector {
	if n < 0 {
		panic(fmt.Sprintf("zmatrix: NewVector: negative length %d", n))
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Int)
	}

	return v
}

// VectorFromInt64 builds a vector from the given entries.
func VectorFromInt64(entries ...int64) Vector {
	v := make(Vector, len(entries))
	for i, e := range entries {
		v[i] = big.NewInt(e)
	}

	return v
}

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v) }

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	w := make(Vector, len(v))
	for i := range v {
		w[i] = new(big.Int).Set(v[i])
	}

	return w
}

// Equal reports whether v and w have the same length and entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (v Vector) IsZero() bool {
	for i := range v {
		if v[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// IsNonNegative reports whether every entry is ≥ 0.
func (v Vector) IsNonNegative() bool {
	for i := range v {
		if v[i].Sign() < 0 {
			return false
		}
	}

	return true
}

// IsPositive reports whether every entry is > 0.
// Vacuously true for the empty vector.
func (v Vector) IsPositive() bool {
	for i := range v {
		if v[i].Sign() <= 0 {
			return false
		}
	}

	return true
}

// Dot returns the inner product ⟨v,w⟩. Panics if the lengths differ.
func (v Vector) Dot(w Vector) *big.Int {
	v.mustMatch(w, "Dot")
	sum := new(big.Int)
	t := new(big.Int)
	for i := range v {
		sum.Add(sum, t.Mul(v[i], w[i]))
	}

	return sum
}

// Add returns v + w. Panics if the lengths differ.
func (v Vector) Add(w Vector) Vector {
	v.mustMatch(w, "Add")
	r := make(Vector, len(v))
	for i := range v {
		r[i] = new(big.Int).Add(v[i], w[i])
	}

	return r
}

// Sub returns v − w. Panics if the lengths differ.
func (v Vector) Sub(w Vector) Vector {
	v.mustMatch(w, "Sub")
	r := make(Vector, len(v))
	for i := range v {
		r[i] = new(big.Int).Sub(v[i], w[i])
	}

	return r
}

// Neg returns −v.
func (v Vector) Neg() Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = new(big.Int).Neg(v[i])
	}

	return r
}

// Scale returns c·v.
func (v Vector) Scale(c *big.Int) Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = new(big.Int).Mul(c, v[i])
	}

	return r
}

// Combine returns p·v + q·w. Panics if the lengths differ.
// Used heavily by the double description step, where new rays are integer
// combinations of a positive and a negative generator.
func Combine(p *big.Int, v Vector, q *big.Int, w Vector) Vector {
	v.mustMatch(w, "Combine")
	r := make(Vector, len(v))
	t := new(big.Int)
	for i := range v {
		r[i] = new(big.Int).Mul(p, v[i])
		r[i].Add(r[i], t.Mul(q, w[i]))
	}

	return r
}

// Primitive returns v divided by the gcd of its entries, preserving
// direction. The zero vector is returned as a clone of itself.
func (v Vector) Primitive() Vector {
	g := new(big.Int)
	for i := range v {
		if v[i].Sign() == 0 {
			continue
		}
		a := new(big.Int).Abs(v[i])
		if g.Sign() == 0 {
			g.Set(a)
		} else {
			g.GCD(nil, nil, g, a)
		}
	}
	if g.Sign() == 0 {
		return v.Clone()
	}
	r := make(Vector, len(v))
	for i := range v {
		r[i] = new(big.Int).Quo(v[i], g)
	}

	return r
}

// Cmp compares v and w lexicographically, returning -1, 0 or +1.
// Panics if the lengths differ.
func (v Vector) Cmp(w Vector) int {
	v.mustMatch(w, "Cmp")
	for i := range v {
		if c := v[i].Cmp(w[i]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders the vector as (a,b,...,z).
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v[i].String()
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// mustMatch panics unless v and w have equal length. Contract check for the
// arithmetic methods above.
func (v Vector) mustMatch(w Vector, op string) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("zmatrix: %s: vector lengths %d and %d differ", op, len(v), len(w)))
	}
}
