package service

import (
	"slices"

	"donation_terminal_backend/internals/features/donations/settings/model"
)

// AllowedAmounts menurunkan daftar nominal yang boleh dipilih donatur.
//   - single → [option1]
//   - selain single (termasuk mode tak dikenal) → aturan dual:
//     [option1, option2] tanpa nilai kosong/nol
//
// Dual dengan kedua opsi kosong menghasilkan daftar kosong: semua nominal ditolak.
func AllowedAmounts(s *model.DonationSettings) []int64 {
	out := make([]int64, 0, 2)
	if s == nil {
		return out
	}

	if s.Mode == model.DonationModeSingle {
		if s.Option1 != nil {
			out = append(out, *s.Option1)
		}
		return out
	}

	for _, opt := range []*int64{s.Option1, s.Option2} {
		if opt != nil && *opt != 0 {
			out = append(out, *opt)
		}
	}
	return out
}

func IsAllowedAmount(amount int64, s *model.DonationSettings) bool {
	return slices.Contains(AllowedAmounts(s), amount)
}
