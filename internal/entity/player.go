package entity

type PlayerKind string

const (
	HumanPlayer    PlayerKind = "human"
	ComputerPlayer PlayerKind = "computer"
)

type Player struct {
	Name string
	Mark Mark
	Kind PlayerKind
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Mark: mark, Kind: HumanPlayer}
}

func NewComputerPlayer(mark Mark) *Player {
	return &Player{Name: "AI", Mark: mark, Kind: ComputerPlayer}
}

func (that *Player) IsComputer() bool {
	return that.Kind == ComputerPlayer
}
