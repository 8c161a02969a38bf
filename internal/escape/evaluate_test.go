package escape_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandel/internal/escape"
)

var _ = Describe("Evaluate", func() {
	DescribeTable("points outside the radius-2 disk escape on the first step",
		func(c complex128) {
			r, err := escape.Evaluate(c, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(Equal(escape.Result(0)))
		},
		Entry("positive real", complex(2.1, 0)),
		Entry("negative real", complex(-3, 0)),
		Entry("imaginary", complex(0, 2.5)),
		Entry("diagonal", complex(1.5, 1.5)),
		Entry("far away", complex(1e6, -1e6)),
	)

	It("never escapes for c = 0", func() {
		for budget := 1; budget <= 1000; budget++ {
			Expect(escape.Evaluate(0, budget)).To(Equal(escape.Bounded))
		}
	})

	It("keeps the period-2 orbit of c = -1 bounded", func() {
		for _, budget := range []int{1, 2, 3, 10, 100, 1000} {
			Expect(escape.Evaluate(-1, budget)).To(Equal(escape.Bounded))
		}
	})

	It("keeps the tip c = -2 bounded", func() {
		Expect(escape.Evaluate(-2, 1000)).To(Equal(escape.Bounded))
	})

	It("keeps the cycle of c = i bounded", func() {
		Expect(escape.Evaluate(complex(0, 1), 1000)).To(Equal(escape.Bounded))
	})

	It("escapes c = 1 at iteration 2", func() {
		Expect(escape.Evaluate(1, 50)).To(Equal(escape.Result(2)))
	})

	It("escapes c = 2 at iteration 1 since |z1| = 2 is not beyond the threshold", func() {
		Expect(escape.Evaluate(2, 50)).To(Equal(escape.Result(1)))
	})

	It("reports bounded when the budget runs out before the escape", func() {
		Expect(escape.Evaluate(1, 2)).To(Equal(escape.Bounded))
		Expect(escape.Evaluate(1, 3)).To(Equal(escape.Result(2)))
	})

	It("is deterministic", func() {
		c := complex(-0.7435, 0.1314)
		first, err := escape.Evaluate(c, 500)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 10; i++ {
			Expect(escape.Evaluate(c, 500)).To(Equal(first))
		}
	})

	It("is monotonic in the budget", func() {
		budgets := []int{5, 20, 80, 320}
		for re := -2.0; re <= 0.5; re += 0.05 {
			for im := -1.2; im <= 1.2; im += 0.05 {
				c := complex(re, im)
				prev := escape.Iterate(c, budgets[0])
				for _, budget := range budgets[1:] {
					cur := escape.Iterate(c, budget)
					if _, ok := prev.Escaped(); ok {
						Expect(cur).To(Equal(prev), "c=%v budget=%d", c, budget)
					} else if m, ok := cur.Escaped(); ok {
						// bounded at the previous budget, so any escape comes later
						Expect(m).To(BeNumerically(">=", budget/4))
					}
					prev = cur
				}
			}
		}
	})

	It("keeps escape counts below the budget", func() {
		for re := -2.5; re <= 1.0; re += 0.1 {
			for im := -1.5; im <= 1.5; im += 0.1 {
				r := escape.Iterate(complex(re, im), 30)
				if n, ok := r.Escaped(); ok {
					Expect(n).To(BeNumerically("<", 30))
					Expect(n).To(BeNumerically(">=", 0))
				}
			}
		}
	})

	Context("with invalid input", func() {
		DescribeTable("rejects the parameter",
			func(c complex128, budget int, want error) {
				r, err := escape.Evaluate(c, budget)
				Expect(err).To(MatchError(want))
				Expect(r).To(Equal(escape.Bounded))

				var perr *escape.ParamError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Budget).To(Equal(budget))
			},
			Entry("zero budget", complex(0, 0), 0, escape.ErrInvalidBudget),
			Entry("negative budget", complex(0.1, 0.1), -5, escape.ErrInvalidBudget),
			Entry("NaN real", complex(math.NaN(), 0), 10, escape.ErrInvalidPoint),
			Entry("NaN imaginary", complex(0, math.NaN()), 10, escape.ErrInvalidPoint),
			Entry("+Inf", complex(math.Inf(1), 0), 10, escape.ErrInvalidPoint),
			Entry("-Inf imaginary", complex(0, math.Inf(-1)), 10, escape.ErrInvalidPoint),
		)
	})
})

var _ = Describe("Orbit", func() {
	It("stops at the escaping value", func() {
		Expect(escape.Orbit(1, 50)).To(Equal([]complex128{1, 2, 5}))
	})

	It("runs for the full budget when bounded", func() {
		orbit, err := escape.Orbit(-1, 6)
		Expect(err).NotTo(HaveOccurred())
		Expect(orbit).To(Equal([]complex128{-1, 0, -1, 0, -1, 0}))
	})

	It("agrees with Iterate on the escape step", func() {
		c := complex(0.3, 0.5)
		r := escape.Iterate(c, 200)
		orbit, err := escape.Orbit(c, 200)
		Expect(err).NotTo(HaveOccurred())
		if n, ok := r.Escaped(); ok {
			Expect(orbit).To(HaveLen(n + 1))
		} else {
			Expect(orbit).To(HaveLen(200))
		}
	})

	It("rejects a non-positive budget", func() {
		_, err := escape.Orbit(0, 0)
		Expect(err).To(MatchError(escape.ErrInvalidBudget))
	})
})

var _ = Describe("Smooth", func() {
	It("returns the budget for bounded points", func() {
		Expect(escape.Smooth(0, 40)).To(Equal(40.0))
	})

	It("lands between the escape step and the next one", func() {
		mu, err := escape.Smooth(1, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(mu).To(BeNumerically(">", 2))
		Expect(mu).To(BeNumerically("<", 3))
	})

	It("stays finite when the squared magnitude overflows", func() {
		for _, c := range []complex128{1e200, complex(0, -1e200), complex(1e300, 1e300)} {
			mu, err := escape.Smooth(c, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsInf(mu, 0) || math.IsNaN(mu)).To(BeFalse(), "c=%v gave %v", c, mu)
		}

		mu, err := escape.Smooth(1e200, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(mu).To(BeNumerically("~", 1-math.Log(200*math.Ln10)/math.Ln2, 1e-9))
	})
})
