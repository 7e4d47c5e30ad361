package battle

// firePhase runs one complete firing pass over a precomputed order.
func (b *Battle) firePhase(phase Phase, pass int, order []turnRef) {
	b.log.push(Event{Kind: EventPhaseStart, Phase: phase, Pass: pass})
	r := &resolver{setup: b.setup, log: b.log, rng: b.rng}
	for _, actor := range order {
		r.resolve(phase, pass, actor)
	}
}

// firePhase1 is the opening artillery pass in range order. It always runs;
// an empty side simply produces skip entries instead of attacks.
func (b *Battle) firePhase1() {
	b.firePhase(PhaseArtillery, 1, orderedByRange(b.setup, b.log))
}

// firePhase2 is the second artillery pass in fleet-index order. It only runs
// when a battleship-class ship is present on either side; nothing else gates
// it.
func (b *Battle) firePhase2() {
	if !b.setup.IncludesBattleshipClass() {
		b.log.push(Event{Kind: EventPhaseSkip, Phase: PhaseArtillery, Pass: 2, Reason: ReasonNoBattleship})
		return
	}
	b.firePhase(PhaseArtillery, 2, orderedByIndex(b.setup, b.log))
}
