// Command mapgen emits a random galaxy file for the campaign server. Every
// planet is reachable: the generator lays a random spanning path first, then
// sprinkles extra edges on top.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type planetDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Owner       string   `yaml:"owner,omitempty"`
	ValueOne    int      `yaml:"value_one"`
	ValueTwo    int      `yaml:"value_two"`
	Connections []string `yaml:"connections"`
}

type galaxyDoc struct {
	Factions  []string    `yaml:"factions"`
	Resources []string    `yaml:"resources"`
	Planets   []planetDoc `yaml:"planets"`
}

var planetTypes = []string{"FORGE", "HIVE", "AGRI", "MINING", "SHRINE", "DEATH", "BARREN"}

var nameParts = struct {
	first  []string
	second []string
}{
	first:  []string{"Sancta", "Ferrum", "Vigil", "Kharon", "Ashen", "Lucis", "Morr", "Thracia", "Ophid", "Baleful"},
	second: []string{"Prime", "Secundus", "Tertius", "Reach", "Gate", "Hollow", "Spire", "Verge", "Landing", "Throne"},
}

func main() {
	var planets int
	var extraEdges int
	var seed int64
	var out string
	flag.IntVar(&planets, "planets", 12, "number of planets")
	flag.IntVar(&extraEdges, "extra-edges", 6, "extra edges beyond the spanning path")
	flag.Int64Var(&seed, "seed", 1, "rng seed")
	flag.StringVar(&out, "out", "galaxy.yaml", "output file")
	flag.Parse()

	if planets < 2 {
		log.Fatal("need at least 2 planets")
	}
	if planets > len(nameParts.first)*len(nameParts.second) {
		log.Fatalf("at most %d planets supported", len(nameParts.first)*len(nameParts.second))
	}

	rng := rand.New(rand.NewSource(seed))
	doc := generate(rng, planets, extraEdges)

	raw, err := yaml.Marshal(doc)
	if err != nil {
		log.Fatalf("marshal galaxy: %v", err)
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	fmt.Printf("wrote %d planets to %s\n", planets, out)
}

func generate(rng *rand.Rand, count, extraEdges int) galaxyDoc {
	doc := galaxyDoc{
		Factions:  []string{"imperium", "orks", "chaos", "eldar"},
		Resources: []string{"requisition", "ore", "promethium", "food", "tech", "faith", "intel"},
	}

	used := map[string]bool{}
	edges := map[string]map[string]bool{}
	for i := 0; i < count; i++ {
		name := pickName(rng, used)
		doc.Planets = append(doc.Planets, planetDoc{
			ID:       slug(name, i),
			Name:     name,
			Type:     planetTypes[rng.Intn(len(planetTypes))],
			ValueOne: rng.Intn(5),
			ValueTwo: rng.Intn(4),
		})
		edges[doc.Planets[i].ID] = map[string]bool{}
	}

	// Spanning path over a shuffled order keeps the map connected.
	order := rng.Perm(count)
	for i := 1; i < count; i++ {
		connect(edges, doc.Planets[order[i-1]].ID, doc.Planets[order[i]].ID)
	}
	for i := 0; i < extraEdges; i++ {
		a := doc.Planets[rng.Intn(count)].ID
		b := doc.Planets[rng.Intn(count)].ID
		if a != b {
			connect(edges, a, b)
		}
	}

	for i := range doc.Planets {
		for other := range edges[doc.Planets[i].ID] {
			doc.Planets[i].Connections = append(doc.Planets[i].Connections, other)
		}
		sort.Strings(doc.Planets[i].Connections)
	}

	// Two opposed homeworlds, from the ends of the spanning path.
	doc.Planets[order[0]].Owner = "imperium"
	doc.Planets[order[count-1]].Owner = "orks"

	return doc
}

func connect(edges map[string]map[string]bool, a, b string) {
	edges[a][b] = true
	edges[b][a] = true
}

func pickName(rng *rand.Rand, used map[string]bool) string {
	for {
		name := nameParts.first[rng.Intn(len(nameParts.first))] + " " + nameParts.second[rng.Intn(len(nameParts.second))]
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

func slug(name string, i int) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	return fmt.Sprintf("%s-%d", string(out), i)
}
