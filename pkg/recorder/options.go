package recorder

import "github.com/giongto35/chessroom/pkg/rules"

type Options struct {
	// Dir is the folder for the records.
	Dir string
	// Name is the file name template.
	Name string
	// Position is the initial position of the games.
	Position string
	// Site is the PGN Site tag.
	Site string
}

func (o *Options) setDefaults() {
	if o.Name == "" {
		o.Name = "%date:20060102-150405%_%id%"
	}
	if o.Position == "" {
		o.Position = rules.StartPosition
	}
	if o.Site == "" {
		o.Site = "?"
	}
}
