package format

// ID identifies a compression method in the container header.
//
// Values are derived from the method's canonical name with MakeID and are
// part of the wire format: renaming a method changes its identifier and
// breaks compatibility with existing containers.
type ID uint32

// Identifiers of the declared methods, precomputed with MakeID.
const (
	None       ID = 0x9a9190b1 // MakeID("None")
	Lzo1       ID = 0xce9085b3 // MakeID("Lzo1")
	Lzo1_99    ID = 0xcea9bcec // MakeID("Lzo1_99")
	Lzo1a      ID = 0xce9085d2 // MakeID("Lzo1a")
	Lzo1a_99   ID = 0xf7a9dad2 // MakeID("Lzo1a_99")
	Lzo1b      ID = 0xce9085d1 // MakeID("Lzo1b")
	Lzo1b_1    ID = 0xcea1dad1 // MakeID("Lzo1b_1")
	Lzo1b_2    ID = 0xcea2dad1 // MakeID("Lzo1b_2")
	Lzo1b_3    ID = 0xcea3dad1 // MakeID("Lzo1b_3")
	Lzo1b_4    ID = 0xcea4dad1 // MakeID("Lzo1b_4")
	Lzo1b_5    ID = 0xcea5dad1 // MakeID("Lzo1b_5")
	Lzo1b_6    ID = 0xcea6dad1 // MakeID("Lzo1b_6")
	Lzo1b_7    ID = 0xcea7dad1 // MakeID("Lzo1b_7")
	Lzo1b_8    ID = 0xcea8dad1 // MakeID("Lzo1b_8")
	Lzo1b_9    ID = 0xcea9dad1 // MakeID("Lzo1b_9")
	Lzo1b_99   ID = 0xf7a9dad1 // MakeID("Lzo1b_99")
	Lzo1b_999  ID = 0xf7a9dae8 // MakeID("Lzo1b_999")
	Lzo1c      ID = 0xce9085d0 // MakeID("Lzo1c")
	Lzo1c_1    ID = 0xcea1dad0 // MakeID("Lzo1c_1")
	Lzo1c_2    ID = 0xcea2dad0 // MakeID("Lzo1c_2")
	Lzo1c_3    ID = 0xcea3dad0 // MakeID("Lzo1c_3")
	Lzo1c_4    ID = 0xcea4dad0 // MakeID("Lzo1c_4")
	Lzo1c_5    ID = 0xcea5dad0 // MakeID("Lzo1c_5")
	Lzo1c_6    ID = 0xcea6dad0 // MakeID("Lzo1c_6")
	Lzo1c_7    ID = 0xcea7dad0 // MakeID("Lzo1c_7")
	Lzo1c_8    ID = 0xcea8dad0 // MakeID("Lzo1c_8")
	Lzo1c_9    ID = 0xcea9dad0 // MakeID("Lzo1c_9")
	Lzo1c_99   ID = 0xf7a9dad0 // MakeID("Lzo1c_99")
	Lzo1c_999  ID = 0xf7a9dae9 // MakeID("Lzo1c_999")
	Lzo1f      ID = 0xce9085d5 // MakeID("Lzo1f")
	Lzo1f_1    ID = 0xcea1dad5 // MakeID("Lzo1f_1")
	Lzo1f_999  ID = 0xf7a9daec // MakeID("Lzo1f_999")
	Lzo1x      ID = 0xce9085cb // MakeID("Lzo1x")
	Lzo1x_1    ID = 0xcea1dacb // MakeID("Lzo1x_1")
	Lzo1x_1_11 ID = 0x91a1ebfa // MakeID("Lzo1x_1_11")
	Lzo1x_1_12 ID = 0x91a1e8fa // MakeID("Lzo1x_1_12")
	Lzo1x_1_15 ID = 0x91a1effa // MakeID("Lzo1x_1_15")
	Lzo1x_999  ID = 0xf7a9daf2 // MakeID("Lzo1x_999")
	Lzo1y      ID = 0xce9085ca // MakeID("Lzo1y")
	Lzo1y_1    ID = 0xcea1daca // MakeID("Lzo1y_1")
	Lzo1y_999  ID = 0xf7a9daf3 // MakeID("Lzo1y_999")
	Lzo1z      ID = 0xce9085c9 // MakeID("Lzo1z")
	Lzo1z_999  ID = 0xf7a9daf0 // MakeID("Lzo1z_999")
	Lzo2a      ID = 0xcd9085d2 // MakeID("Lzo2a")
	Lzo2a_999  ID = 0xf4a9daeb // MakeID("Lzo2a_999")
	Lz4        ID = 0xffcb85b3 // MakeID("Lz4")
	Lz4hc      ID = 0x97cb85d0 // MakeID("Lz4hc")
	S2         ID = 0xffffcdac // MakeID("S2")
	S2_better  ID = 0xf8d4b9bb // MakeID("S2_better")
	Snappy     ID = 0x8f9ee8dc // MakeID("Snappy")
	Zstd       ID = 0x9b8b8ca5 // MakeID("Zstd")
	Zstd_best  ID = 0xe8eeee8e // MakeID("Zstd_best")
	Deflate    ID = 0x93fceeda // MakeID("Deflate")
	Deflate_9  ID = 0xccfceee3 // MakeID("Deflate_9")

	// Default is the method used when the caller does not choose one.
	Default = Lzo1x_999
)

var names = map[ID]string{
	None:       "None",
	Lzo1:       "Lzo1",
	Lzo1_99:    "Lzo1_99",
	Lzo1a:      "Lzo1a",
	Lzo1a_99:   "Lzo1a_99",
	Lzo1b:      "Lzo1b",
	Lzo1b_1:    "Lzo1b_1",
	Lzo1b_2:    "Lzo1b_2",
	Lzo1b_3:    "Lzo1b_3",
	Lzo1b_4:    "Lzo1b_4",
	Lzo1b_5:    "Lzo1b_5",
	Lzo1b_6:    "Lzo1b_6",
	Lzo1b_7:    "Lzo1b_7",
	Lzo1b_8:    "Lzo1b_8",
	Lzo1b_9:    "Lzo1b_9",
	Lzo1b_99:   "Lzo1b_99",
	Lzo1b_999:  "Lzo1b_999",
	Lzo1c:      "Lzo1c",
	Lzo1c_1:    "Lzo1c_1",
	Lzo1c_2:    "Lzo1c_2",
	Lzo1c_3:    "Lzo1c_3",
	Lzo1c_4:    "Lzo1c_4",
	Lzo1c_5:    "Lzo1c_5",
	Lzo1c_6:    "Lzo1c_6",
	Lzo1c_7:    "Lzo1c_7",
	Lzo1c_8:    "Lzo1c_8",
	Lzo1c_9:    "Lzo1c_9",
	Lzo1c_99:   "Lzo1c_99",
	Lzo1c_999:  "Lzo1c_999",
	Lzo1f:      "Lzo1f",
	Lzo1f_1:    "Lzo1f_1",
	Lzo1f_999:  "Lzo1f_999",
	Lzo1x:      "Lzo1x",
	Lzo1x_1:    "Lzo1x_1",
	Lzo1x_1_11: "Lzo1x_1_11",
	Lzo1x_1_12: "Lzo1x_1_12",
	Lzo1x_1_15: "Lzo1x_1_15",
	Lzo1x_999:  "Lzo1x_999",
	Lzo1y:      "Lzo1y",
	Lzo1y_1:    "Lzo1y_1",
	Lzo1y_999:  "Lzo1y_999",
	Lzo1z:      "Lzo1z",
	Lzo1z_999:  "Lzo1z_999",
	Lzo2a:      "Lzo2a",
	Lzo2a_999:  "Lzo2a_999",
	Lz4:        "Lz4",
	Lz4hc:      "Lz4hc",
	S2:         "S2",
	S2_better:  "S2_better",
	Snappy:     "Snappy",
	Zstd:       "Zstd",
	Zstd_best:  "Zstd_best",
	Deflate:    "Deflate",
	Deflate_9:  "Deflate_9",
}

// MakeID derives the identifier of a method name.
//
// The hash starts from 0xffffffff and XORs each byte into one of the four
// byte lanes, cycling through the lanes in order. It is deterministic and
// case-sensitive; case folding is the registry's job.
func MakeID(name string) ID {
	id := uint32(0xffffffff)
	for i := 0; i < len(name); i++ {
		id ^= uint32(name[i]) << ((i & 3) << 3)
	}

	return ID(id)
}

// Names returns the canonical names of all declared identifiers, in declaration order.
func Names() []string {
	out := make([]string, len(declared))
	copy(out, declared)

	return out
}

// String returns the canonical method name, or "Unknown" for an undeclared identifier.
func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}

	return "Unknown"
}

// IsNone reports whether the identifier marks a stored payload.
func (id ID) IsNone() bool {
	return id == None
}

var declared = []string{
	"None", "Lzo1", "Lzo1_99", "Lzo1a", "Lzo1a_99", "Lzo1b",
	"Lzo1b_1", "Lzo1b_2", "Lzo1b_3", "Lzo1b_4", "Lzo1b_5", "Lzo1b_6",
	"Lzo1b_7", "Lzo1b_8", "Lzo1b_9", "Lzo1b_99", "Lzo1b_999", "Lzo1c",
	"Lzo1c_1", "Lzo1c_2", "Lzo1c_3", "Lzo1c_4", "Lzo1c_5", "Lzo1c_6",
	"Lzo1c_7", "Lzo1c_8", "Lzo1c_9", "Lzo1c_99", "Lzo1c_999", "Lzo1f",
	"Lzo1f_1", "Lzo1f_999", "Lzo1x", "Lzo1x_1", "Lzo1x_1_11", "Lzo1x_1_12",
	"Lzo1x_1_15", "Lzo1x_999", "Lzo1y", "Lzo1y_1", "Lzo1y_999", "Lzo1z",
	"Lzo1z_999", "Lzo2a", "Lzo2a_999", "Lz4", "Lz4hc", "S2",
	"S2_better", "Snappy", "Zstd", "Zstd_best", "Deflate", "Deflate_9",
}
