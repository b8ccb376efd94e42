package practice

import (
	"github.com/deviuno/ouse-passar-practice/internal/config"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// calculateReward converts a correctness outcome and the active timing
// mode into XP and coin deltas. Total function: an incorrect answer is
// zero, and missing coefficients fall back to the configured default
// pair, so reward computation can never fail mid-session.
//
// The results screen reports the accumulated per-answer rewards; there is
// no separate results-screen formula.
func calculateReward(correct bool, mode domain.Mode, coeffs *domain.RewardCoefficients, defaults config.RewardConfig) domain.Reward {
	if !correct {
		return domain.Reward{}
	}

	if coeffs == nil {
		if mode == domain.ModeHard {
			return domain.Reward{XP: defaults.HardXP, Coins: defaults.HardCoins}
		}
		return domain.Reward{XP: defaults.ZenXP, Coins: defaults.ZenCoins}
	}

	if mode == domain.ModeHard {
		return domain.Reward{XP: coeffs.XPPerCorrectHardMode, Coins: coeffs.CoinsPerCorrectHardMode}
	}
	return domain.Reward{XP: coeffs.XPPerCorrect, Coins: coeffs.CoinsPerCorrect}
}
