// Package md parses the markdown dialect used by app descriptions and privacy
// policies: ** and * emphasis, # headings, and blank-line spacers. It splits
// text into blocks and titled sections and renders them for the terminal or HTML.
package md
