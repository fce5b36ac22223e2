package statistics

import (
	"github.com/fadedpez/tablejack/pkg/entities"
	"github.com/fadedpez/tablejack/pkg/services/blackjack"
)

// Service accumulates results over the session's completed rounds. The
// tallies live in memory for the lifetime of the process.
type Service struct {
	stats entities.SessionStatistics
}

// NewService creates a new statistics service
func NewService() *Service {
	return &Service{}
}

// RecordRound tallies every settled hand of a completed round
func (s *Service) RecordRound(hands []*blackjack.Hand) {
	s.stats.RoundsPlayed++

	for _, h := range hands {
		s.stats.HandsPlayed++
		s.stats.TotalBet += h.Bet
		s.stats.TotalPayout += blackjack.PayoutFor(h.Status, h.Blackjack, h.Bet)

		switch h.Status {
		case blackjack.StatusWin:
			s.stats.Wins++
		case blackjack.StatusLose:
			s.stats.Losses++
		case blackjack.StatusPush:
			s.stats.Pushes++
		}

		if h.Blackjack {
			s.stats.Blackjacks++
		}
		if h.Bust {
			s.stats.Busts++
		}
		if h.Split {
			s.stats.Splits++
		}
		if h.Doubled {
			s.stats.DoubleDowns++
		}
	}
}

// Summary returns a copy of the accumulated session statistics
func (s *Service) Summary() entities.SessionStatistics {
	return s.stats
}
