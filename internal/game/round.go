package game

// CheckWinner ends the game once a score reaches WinScore. Player 1 is checked first,
// so only one winner is ever recorded. Returns the winner, or 0.
func CheckWinner(s *State) int {
	switch {
	case s.Score1 >= WinScore:
		s.Winner = 1
	case s.Score2 >= WinScore:
		s.Winner = 2
	default:
		return 0
	}
	s.Phase = PhaseEnded
	return s.Winner
}
