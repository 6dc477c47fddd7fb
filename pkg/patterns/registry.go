package patterns

// The registry is a fixed, ordered list; menu code addresses entries by
// index. Offsets follow the conventional orientations: the glider travels
// down-right, Diehard vanishes after 130 generations.
var registry = []Pattern{
	{
		Name:    "Glider",
		Offsets: offsets([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
	},
	{
		Name:    "Random",
		Kind:    KindRandom,
		Density: DefaultRandomDensity,
	},
	{
		Name:    "Block",
		Offsets: offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}),
	},
	{
		Name:    "Blinker",
		Offsets: offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
	},
	{
		Name: "Beacon",
		Offsets: offsets(
			[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1},
			[2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3},
		),
	},
	{
		Name: "R-pentomino",
		Offsets: offsets(
			[2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2},
		),
	},
	{
		Name: "Acorn",
		Offsets: offsets(
			[2]int{1, 0}, [2]int{3, 1},
			[2]int{0, 2}, [2]int{1, 2}, [2]int{4, 2}, [2]int{5, 2}, [2]int{6, 2},
		),
	},
	{
		Name: "Diehard",
		Offsets: offsets(
			[2]int{6, 0}, [2]int{0, 1}, [2]int{1, 1},
			[2]int{1, 2}, [2]int{5, 2}, [2]int{6, 2}, [2]int{7, 2},
		),
	},
	{
		Name: "Gosper Gun",
		Offsets: offsets(
			[2]int{24, 0}, [2]int{22, 1}, [2]int{24, 1}, [2]int{12, 2}, [2]int{13, 2},
			[2]int{20, 2}, [2]int{21, 2}, [2]int{34, 2}, [2]int{35, 2}, [2]int{11, 3},
			[2]int{15, 3}, [2]int{20, 3}, [2]int{21, 3}, [2]int{34, 3}, [2]int{35, 3},
			[2]int{0, 4}, [2]int{1, 4}, [2]int{10, 4}, [2]int{16, 4}, [2]int{20, 4},
			[2]int{21, 4}, [2]int{0, 5}, [2]int{1, 5}, [2]int{10, 5}, [2]int{14, 5},
			[2]int{16, 5}, [2]int{17, 5}, [2]int{22, 5}, [2]int{24, 5}, [2]int{10, 6},
			[2]int{16, 6}, [2]int{24, 6}, [2]int{11, 7}, [2]int{15, 7}, [2]int{12, 8},
			[2]int{13, 8},
		),
	},
	{
		Name: "Pentadecathlon",
		Offsets: offsets(
			[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0},
			[2]int{1, -1}, [2]int{1, 1}, [2]int{4, -1}, [2]int{4, 1},
			[2]int{5, 0}, [2]int{6, 0}, [2]int{7, 0}, [2]int{8, 0},
		),
	},
}

// Count returns the number of registered patterns.
func Count() int { return len(registry) }

// ByIndex returns the pattern at the given menu index. Out-of-range indices
// fall back to the glider.
func ByIndex(i int) Pattern {
	if i < 0 || i >= len(registry) {
		return registry[0]
	}
	return registry[i]
}

// ByName looks a pattern up by display name.
func ByName(name string) (Pattern, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Names returns the display names in menu order.
func Names() []string {
	out := make([]string, len(registry))
	for i, p := range registry {
		out[i] = p.Name
	}
	return out
}
