// Package graph builds the article-to-source network data consumed by the
// visualization. It only produces nodes and edges; rendering lives elsewhere.
package graph

import "github.com/slaaziz/CBS/models"

// Node kinds.
const (
	KindSource = "source" // a CBS statistical release
	KindMedia  = "media"  // a media article
)

// Node is one vertex of the network.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Kind  string `json:"kind" yaml:"kind"`
}

// Edge links a media article to a source release, weighted by the article's
// vertrouwensscore.
type Edge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Graph is the complete network.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Build constructs the network from articles with parent linkage. At most
// maxSources distinct source releases are included (0 means no limit); every
// article linked to an included source becomes a media node.
func Build(articles []models.Article, maxSources int) Graph {
	g := Graph{}
	sourceNodes := make(map[string]bool)

	for _, a := range articles {
		links := a.ParentLinks()
		if len(links) == 0 {
			continue
		}
		articleAdded := false
		for _, link := range links {
			if link.CBSNumber == "" {
				continue
			}
			if !sourceNodes[link.CBSNumber] {
				if maxSources > 0 && len(sourceNodes) >= maxSources {
					continue
				}
				label := link.Title
				if label == "" {
					label = link.CBSNumber
				}
				sourceNodes[link.CBSNumber] = true
				g.Nodes = append(g.Nodes, Node{ID: link.CBSNumber, Label: label, Kind: KindSource})
			}
			if !articleAdded {
				label := a.Publisher
				if label == "" {
					label = a.Title
				}
				g.Nodes = append(g.Nodes, Node{ID: a.ID, Label: label, Kind: KindMedia})
				articleAdded = true
			}
			g.Edges = append(g.Edges, Edge{Source: a.ID, Target: link.CBSNumber, Weight: a.Vertrouwensscore})
		}
	}
	return g
}
