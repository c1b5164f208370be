package cpu

// Branch classifies the control-flow outcome of one executed instruction.
// Conditional branches report taken or not-taken; unconditional transfers
// (JMP, JSR, TRAP) report jump; everything else reports none.
type Branch int

//go:generate go tool stringer -linecomment -type=Branch
const (
	BRANCH_NONE      = Branch(0) // none
	BRANCH_NOT_TAKEN = Branch(1) // not-taken
	BRANCH_TAKEN     = Branch(2) // taken
	BRANCH_JUMP      = Branch(3) // jump
)

// Predictor is a two-bit saturating counter over conditional branch
// outcomes. It is a standalone model: the execution loop reports outcomes
// through Step but never consults a prediction.
type Predictor int

//go:generate go tool stringer -linecomment -type=Predictor
const (
	PREDICT_STRONGLY_NOT_TAKEN = Predictor(0) // strongly-not-taken
	PREDICT_NOT_TAKEN          = Predictor(1) // not-taken
	PREDICT_TAKEN              = Predictor(2) // taken
	PREDICT_STRONGLY_TAKEN     = Predictor(3) // strongly-taken
)

// PredictsTaken reports whether the counter currently predicts taken.
func (pr Predictor) PredictsTaken() bool {
	return pr >= PREDICT_TAKEN
}

// Observe moves the counter one step toward the observed outcome,
// saturating at both ends. Unconditional jumps and non-branch
// instructions leave the state unchanged.
func (pr Predictor) Observe(outcome Branch) Predictor {
	switch outcome {
	case BRANCH_TAKEN:
		if pr < PREDICT_STRONGLY_TAKEN {
			pr++
		}
	case BRANCH_NOT_TAKEN:
		if pr > PREDICT_STRONGLY_NOT_TAKEN {
			pr--
		}
	}

	return pr
}
