package core

// Cue names raised in StepResult.Cues. Hosts may map them to sounds or
// ignore them.
const (
	CueStart        = "start"
	CueChomp        = "chomp"
	CuePower        = "power"
	CuePursuerEaten = "pursuer_eaten"
	CueBonus        = "bonus"
	CueDeath        = "death"
	CueLevel        = "level"
	CueGameOver     = "gameover"
)
