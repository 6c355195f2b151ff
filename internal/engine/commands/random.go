// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"
	"math/rand"

	"github.com/google/uuid"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// (choice seq) or (choice seq weights)
func choice(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	population := items(v[0])
	if len(population) == 0 {
		panic("cannot choose from an empty sequence")
	}

	if len(v) == 1 {
		return population[rand.Intn(len(population))] //nolint:gosec
	}

	weights := items(v[1])
	if len(weights) != len(population) {
		panic("the number of weights does not match the population")
	}

	cumulative := make([]float64, len(weights))
	total := 0.0

	for i, w := range weights {
		total += arith(w).Float64()
		cumulative[i] = total
	}

	if total <= 0 {
		panic("total of weights must be greater than zero")
	}

	r := rand.Float64() * total //nolint:gosec
	for i, c := range cumulative {
		if r < c {
			return population[i]
		}
	}

	return population[len(population)-1]
}

// (ezchoice value...) picks one of its arguments.
func ezchoice(args cell.I) cell.I {
	v := list.Slice(args)
	if len(v) == 0 {
		panic("cannot choose from an empty sequence")
	}

	return v[rand.Intn(len(v))] //nolint:gosec
}

// (randint a b) returns an integer between a and b inclusive.
func randint(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	a, b := exact(v[0]), exact(v[1])
	if a.Cmp(b) > 0 {
		panic("empty range for randint(" + a.String() + ", " + b.String() + ")")
	}

	n := new(big.Int).Sub(b, a)
	n.Add(n, big.NewInt(1))

	r := new(big.Int).Rand(rand.New(rand.NewSource(rand.Int63())), n) //nolint:gosec

	return num.Big(r.Add(r, a))
}

func makeUUID(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return str.New(uuid.NewString())
}
