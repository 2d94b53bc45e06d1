package maze3d

// Audio receives sound triggers from state transitions. Implementations must
// not block the game loop.
type Audio interface {
	PlaySelect()
	PlayWin()
	StartMusic()
	StopMusic()
}

// NopAudio discards every trigger.
type NopAudio struct{}

func (NopAudio) PlaySelect() {}
func (NopAudio) PlayWin()    {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic()  {}
