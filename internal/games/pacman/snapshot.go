package pacman

// Snapshot is a read-only, serializable projection of a State. It is what
// front ends (and tests) consume.
type Snapshot struct {
	Score        int                  `json:"score"`
	GameOver     bool                 `json:"game_over"`
	Won          bool                 `json:"won"`
	PowerMode    bool                 `json:"power_mode"`
	PowerLeftMS  int64                `json:"power_left_ms"`
	Direction    string               `json:"direction"`
	Pacman       Position             `json:"pacman"`
	Ghosts       [NumGhosts]Position  `json:"ghosts"`
	GhostDirs    [NumGhosts]Direction `json:"-"`
	Pellets      int                  `json:"pellets"`
	PowerPellets int                  `json:"power_pellets"`
	Rows         []string             `json:"rows"`
}

// Snapshot captures the current state.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Score:        s.Score,
		GameOver:     s.GameOver,
		Won:          s.Won,
		PowerMode:    s.PowerMode,
		PowerLeftMS:  s.PowerLeft.Milliseconds(),
		Direction:    s.Direction.String(),
		Pacman:       s.Pacman,
		Pellets:      s.Pellets.Len(),
		PowerPellets: s.PowerPellets.Len(),
		Rows:         s.Grid().Rows(),
	}
	for i, g := range s.Ghosts {
		snap.Ghosts[i] = g.Pos
		snap.GhostDirs[i] = g.Dir
	}
	return snap
}
