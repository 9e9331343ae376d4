package domain

import (
	"errors"
	"testing"
)

func quotaOf(pairs map[string]int) Quantities {
	q := make(Quantities, len(pairs))
	for field, v := range pairs {
		s, ok := ParseSlot(field)
		if !ok {
			panic("unknown quota field " + field)
		}
		q[s] = v
	}
	return q
}

func TestValidateOrderSpecAccepts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		height   int
		quantity int
		quota    Quantities
	}{
		{
			name:     "split across two slots",
			height:   10,
			quantity: 50,
			quota:    quotaOf(map[string]int{"gp_calibre5": 20, "gp_calibre6": 30}),
		},
		{
			name:     "single slot holds everything",
			height:   8,
			quantity: 80,
			quota:    quotaOf(map[string]int{"cl_calibre9": 80}),
		},
		{
			name:     "zero quantity with empty quota",
			height:   12,
			quantity: 0,
			quota:    Quantities{},
		},
		{
			name:     "all twelve slots filled",
			height:   5,
			quantity: 60,
			quota: func() Quantities {
				q := make(Quantities, 12)
				for _, s := range Slots() {
					q[s] = 5
				}
				return q
			}(),
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateOrderSpec(tc.height, tc.quantity, tc.quota); err != nil {
				t.Fatalf("expected valid order, got %v", err)
			}
		})
	}
}

func TestValidateOrderSpecRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		height   int
		quantity int
		quota    Quantities
	}{
		{
			name:     "quantity not a multiple of height",
			height:   10,
			quantity: 55,
			quota:    quotaOf(map[string]int{"gp_calibre5": 55}),
		},
		{
			name:     "slot not a multiple of height",
			height:   10,
			quantity: 50,
			quota:    quotaOf(map[string]int{"gp_calibre5": 25, "gp_calibre6": 25}),
		},
		{
			name:     "negative slot",
			height:   10,
			quantity: 10,
			quota:    quotaOf(map[string]int{"gp_calibre5": 20, "cl_calibre7": -10}),
		},
		{
			name:     "sum below quantity",
			height:   10,
			quantity: 50,
			quota:    quotaOf(map[string]int{"gp_calibre5": 20, "gp_calibre6": 20}),
		},
		{
			name:     "sum above quantity",
			height:   10,
			quantity: 50,
			quota:    quotaOf(map[string]int{"gp_calibre5": 30, "gp_calibre6": 30}),
		},
		{
			name:     "zero height",
			height:   0,
			quantity: 0,
			quota:    Quantities{},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateOrderSpec(tc.height, tc.quantity, tc.quota)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestValidateQuotaShrink(t *testing.T) {
	t.Parallel()

	allocated := quotaOf(map[string]int{"gp_calibre5": 20})

	if err := ValidateQuotaShrink(quotaOf(map[string]int{"gp_calibre5": 20}), allocated); err != nil {
		t.Fatalf("matching quota should pass: %v", err)
	}
	if err := ValidateQuotaShrink(quotaOf(map[string]int{"gp_calibre5": 25}), allocated); err != nil {
		t.Fatalf("growing quota should pass: %v", err)
	}
	err := ValidateQuotaShrink(quotaOf(map[string]int{"gp_calibre5": 10}), allocated)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("shrinking below storage should fail, got %v", err)
	}
}
