// Command pathrace generates a maze and races two search algorithms
// across it in the terminal, coloring explored cells, frontiers and the
// final paths as the searches unfold.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/maze"
	"github.com/katalvlaran/pathrace/race"
	"github.com/katalvlaran/pathrace/search"
)

var (
	flagWidth  = flag.Int("width", 22, "Maze width in cells.")
	flagHeight = flag.Int("height", 22, "Maze height in cells.")
	flagMaze   = flag.String("maze", "backtracker", "Maze kind: scattered, backtracker or open.")
	flagAlgoA  = flag.String("a", "bfs", "First contestant: bfs, dfs, ucs, greedy, a* or ida*.")
	flagAlgoB  = flag.String("b", "a*", "Second contestant.")
	flagSeed   = flag.Int64("seed", 0, "Maze seed; 0 picks the default deterministic seed.")
	flagSpeed  = flag.String("speed", "normal", "Animation speed: slow, normal, fast or instant.")
)

const frameInterval = time.Second / 60

var (
	styleWall     = lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("236"))
	styleFloor    = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	styleMud      = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("52"))
	styleExplored = lipgloss.NewStyle().Background(lipgloss.Color("17")).Foreground(lipgloss.Color("39"))
	styleFrontier = lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("15"))
	styleCurrent  = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))
	stylePath     = lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("15"))
	styleEndpoint = lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Bold(true)
	styleLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	styleVerdict  = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	kind := must.M1(maze.ParseKind(*flagMaze))
	algoA := must.M1(search.ParseAlgorithm(*flagAlgoA))
	algoB := must.M1(search.ParseAlgorithm(*flagAlgoB))
	speed := must.M1(race.ParseSpeed(*flagSpeed))

	g := must.M1(maze.Generate(*flagWidth, *flagHeight, kind, maze.WithSeed(*flagSeed)))
	r := must.M1(race.New(g, algoA, algoB, race.WithSpeed(speed)))

	klog.V(1).Infof("racing %s vs %s on a %dx%d %s maze (seed %d)",
		algoA, algoB, *flagWidth, *flagHeight, kind, *flagSeed)

	for !r.Finished() {
		snaps := must.M1(r.Tick())
		if speed != race.Instant {
			drawFrame(r, snaps)
			time.Sleep(frameInterval)
		}
	}

	snaps := must.M1(r.Tick())
	drawFrame(r, snaps)

	v := must.M1(r.Verdict())
	printCentered(styleVerdict.Render(fmt.Sprintf("*** %s *** (%s)", strings.ToUpper(v.Outcome.String()), v.Reason)))
	fmt.Println()
	printLaneStats("A", v.A)
	printLaneStats("B", v.B)
}

func printLaneStats(label string, s race.LaneStats) {
	line := fmt.Sprintf("%s %-7s found=%-5v cost=%-6.0f pathLen=%-4d explored=%-4d iterations=%d",
		label, s.Algorithm, s.Found, s.PathCost, s.PathLen, s.NodesExplored, s.Iterations)
	if !s.Found {
		line = fmt.Sprintf("%s %-7s found=false explored=%-4d iterations=%d",
			label, s.Algorithm, s.NodesExplored, s.Iterations)
	}
	printCentered(line)
}

// drawFrame clears the screen and renders both lanes side by side.
func drawFrame(r *race.Race, snaps [2]*search.Snapshot) {
	a := renderLane(r.Grid(), r.Lane(0), snaps[0])
	b := renderLane(r.Grid(), r.Lane(1), snaps[1])
	frame := lipgloss.JoinHorizontal(lipgloss.Top, a, "   ", b)

	fmt.Print("\033[H\033[2J")
	printCentered(frame)
}

// renderLane paints one algorithm's view of the shared grid: terrain
// underneath, then explored, frontier, path and the current cell on
// top, in that order of precedence (topmost wins).
func renderLane(g *grid.Grid, algo search.Algorithm, snap *search.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(styleLabel.Render(centerString(algo.String(), g.Width*2)))
	sb.WriteByte('\n')

	if snap == nil {
		return sb.String()
	}

	frontier := make(map[grid.Cell]bool, len(snap.Frontier))
	for _, c := range snap.Frontier {
		frontier[c] = true
	}
	onPath := make(map[grid.Cell]bool, len(snap.Path))
	for _, c := range snap.Path {
		onPath[c] = true
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			sb.WriteString(cellStyle(g, snap, frontier, onPath, c).Render(cellGlyph(g, c)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func cellStyle(g *grid.Grid, snap *search.Snapshot, frontier, onPath map[grid.Cell]bool, c grid.Cell) lipgloss.Style {
	switch {
	case snap.Current != nil && *snap.Current == c:
		return styleCurrent
	case c == g.Start || c == g.Goal:
		return styleEndpoint
	case onPath[c]:
		return stylePath
	case frontier[c]:
		return styleFrontier
	case snap.Explored[c]:
		return styleExplored
	case g.Terrain(c) == grid.Wall:
		return styleWall
	case g.Terrain(c) == grid.Mud:
		return styleMud
	}
	return styleFloor
}

// cellGlyph is two characters wide so cells come out roughly square.
func cellGlyph(g *grid.Grid, c grid.Cell) string {
	switch {
	case c == g.Start:
		return "S "
	case c == g.Goal:
		return "G "
	case g.Terrain(c) == grid.Wall:
		return "██"
	case g.Terrain(c) == grid.Mud:
		return "~~"
	}
	return "  "
}

func printCentered(block string) {
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := lipgloss.Width(block)
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	for _, line := range strings.Split(block, "\n") {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", pad, line)
	}
}

func centerString(s string, fit int) string {
	if len(s) >= fit {
		return s
	}
	left := (fit - len(s)) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", fit-len(s)-left)
}
