package timeline

// XML shapes for the FCP7 XMEML subset the parser consumes. Integer-ish
// fields stay strings so a single malformed clip drops that clip instead
// of failing the whole document decode.

type sequence struct {
	Name  string `xml:"name"`
	Rate  *rate  `xml:"rate"`
	Media media  `xml:"media"`
}

type rate struct {
	Timebase string `xml:"timebase"`
	NTSC     string `xml:"ntsc"`
}

type media struct {
	Video *video `xml:"video"`
}

type video struct {
	Tracks []track `xml:"track"`
}

type track struct {
	ClipItems []clipItem `xml:"clipitem"`
}

type clipItem struct {
	Name    string   `xml:"name"`
	Enabled string   `xml:"enabled"`
	Start   string   `xml:"start"`
	End     string   `xml:"end"`
	File    *fileRef `xml:"file"`
}

type fileRef struct {
	Name    string `xml:"name"`
	PathURL string `xml:"pathurl"`
}

// Clip is a single placement on the first video track, in timeline frames.
type Clip struct {
	Start int    // timeline start frame
	End   int    // timeline end frame
	Path  string // resolved filesystem path of the source media
	Name  string // display name, possibly empty
}
