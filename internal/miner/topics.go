package miner

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultTopics are the keyword phrases scanned for in filing text. They
// target segment breakdowns, revenue disaggregation, and the operating
// metrics companies disclose outside XBRL.
var DefaultTopics = []string{
	"segment revenue", "segment information", "revenue by segment",
	"geographic", "revenue by region", "revenue by geography",
	"disaggregated revenue", "revenue disaggregation",
	"customer concentration", "significant customer", "major customer",
	"royalt", "product sales", "collaborative",
	"subscribers", "active users", "monthly active", "annual recurring",
	"units sold", "same-store", "comparable store",
	"backlog", "bookings", "net revenue retention",
	"key performance", "operating metric",
}

type topicsFile struct {
	Topics []string `yaml:"topics"`
}

// LoadTopics reads a YAML topics override file. An empty path returns the
// default list.
func LoadTopics(path string) ([]string, error) {
	if path == "" {
		return DefaultTopics, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "miner: read topics file")
	}
	var tf topicsFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, eris.Wrap(err, "miner: parse topics file")
	}
	if len(tf.Topics) == 0 {
		return nil, eris.New("miner: topics file contains no topics")
	}
	return tf.Topics, nil
}
