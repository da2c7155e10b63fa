package ucd_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/tools/txtar"

	"github.com/f3rmion/unichar/internal/ucd"
)

const sampleData = `0021;EXCLAMATION MARK;Po;0;ON;;;;;N;;;;;
0030;DIGIT ZERO;Nd;0;EN;;0;0;0;N;;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
00A0;NO-BREAK SPACE;Zs;0;CS;<noBreak> 0020;;;;N;NON-BREAKING SPACE;;;;
4E2D;<CJK Ideograph>;Lo;0;L;;;;;N;;;;;
E000;<Private Use, First>;Qq;0;L;;;;;N;;;;;
1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;
`

// IndexSuite covers building the category index from UnicodeData.txt text.
type IndexSuite struct {
	suite.Suite
	idx *ucd.Index
}

func (s *IndexSuite) SetupTest() {
	s.idx = ucd.ParseString(sampleData)
}

// TestSingleLine checks the basic record layout.
func (s *IndexSuite) TestSingleLine() {
	idx := ucd.ParseString("0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;;")
	require.Equal(s.T(), []ucd.Category{"Lu"}, idx.Categories())
	require.Equal(s.T(), []ucd.Record{{Code: 'A', Category: "Lu"}}, idx.Bucket("Lu"))
	require.Equal(s.T(), "A", idx.Bucket("Lu")[0].String())
}

// TestFirstSeenOrder verifies categories keep the order they first appear in.
func (s *IndexSuite) TestFirstSeenOrder() {
	require.Equal(s.T(),
		[]ucd.Category{"Po", "Nd", "Lu", "Ll", "Zs", "Lo", "Qq", "So"},
		s.idx.Categories())
}

// TestBucketOrder verifies characters keep dataset line order.
func (s *IndexSuite) TestBucketOrder() {
	require.Equal(s.T(), []ucd.Record{
		{Code: 'A', Category: "Lu"},
		{Code: 'B', Category: "Lu"},
	}, s.idx.Bucket("Lu"))
	require.Equal(s.T(), 2, s.idx.Count("Lu"))
	require.Equal(s.T(), 9, s.idx.Len())
}

// TestSupplementaryPlane ensures codepoints above U+FFFF are not truncated.
func (s *IndexSuite) TestSupplementaryPlane() {
	bucket := s.idx.Bucket("So")
	require.Len(s.T(), bucket, 1)
	require.Equal(s.T(), rune(0x1F600), bucket[0].Code)
	require.Equal(s.T(), "😀", bucket[0].String())
	require.Equal(s.T(), "U+1F600", bucket[0].Label())
}

// TestLookup checks the reverse codepoint lookup.
func (s *IndexSuite) TestLookup() {
	c, ok := s.idx.Lookup('中')
	require.True(s.T(), ok)
	require.Equal(s.T(), ucd.Category("Lo"), c)

	_, ok = s.idx.Lookup('Z')
	require.False(s.T(), ok)
}

// TestBucketIsCopy makes sure callers can't modify the index.
func (s *IndexSuite) TestBucketIsCopy() {
	bucket := s.idx.Bucket("Lu")
	bucket[0].Code = 'X'
	require.Equal(s.T(), rune('A'), s.idx.Bucket("Lu")[0].Code)

	cats := s.idx.Categories()
	cats[0] = "Zz"
	require.Equal(s.T(), ucd.Category("Po"), s.idx.Categories()[0])
}

// TestLastWins moves a repeated codepoint to its later category.
func (s *IndexSuite) TestLastWins() {
	idx := ucd.ParseString("0041;A;Lu\n0042;B;Lu\n0041;A;Ll\n")
	require.Equal(s.T(), []ucd.Record{{Code: 'B', Category: "Lu"}}, idx.Bucket("Lu"))
	require.Equal(s.T(), []ucd.Record{{Code: 'A', Category: "Ll"}}, idx.Bucket("Ll"))
	require.Equal(s.T(), 2, idx.Len())

	c, _ := idx.Lookup('A')
	require.Equal(s.T(), ucd.Category("Ll"), c)
}

// TestCRLF accepts files with Windows line endings.
func (s *IndexSuite) TestCRLF() {
	idx := ucd.ParseString("0041;A;Lu\r\n0030;ZERO;Nd\r\n")
	require.Equal(s.T(), []ucd.Category{"Lu", "Nd"}, idx.Categories())
}

// TestOverlongLineSkipped drops a line too long to buffer and keeps the
// rest of the file.
func (s *IndexSuite) TestOverlongLineSkipped() {
	long := strings.Repeat("x", 2<<20)
	idx, err := ucd.Parse(strings.NewReader("0041;A;Lu\n" + long + "\n0042;B;Lu\n"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []ucd.Record{{Code: 'A', Category: "Lu"}, {Code: 'B', Category: "Lu"}}, idx.Bucket("Lu"))

	// A record that is itself too long is malformed too.
	idx = ucd.ParseString("0030;ZERO;Nd\n0041;A;Lu;" + long)
	require.NotNil(s.T(), idx)
	require.Equal(s.T(), []ucd.Category{"Nd"}, idx.Categories())
}

// TestEmptyInput yields an empty, usable index.
func (s *IndexSuite) TestEmptyInput() {
	idx := ucd.ParseString("")
	require.NotNil(s.T(), idx)
	require.Empty(s.T(), idx.Categories())
	require.Zero(s.T(), idx.Len())
}

// TestNilIndex behaves as an empty index.
func (s *IndexSuite) TestNilIndex() {
	var idx *ucd.Index
	require.Empty(s.T(), idx.Categories())
	require.Empty(s.T(), idx.Bucket("Lu"))
	require.Zero(s.T(), idx.Count("Lu"))
	require.Zero(s.T(), idx.Len())
	_, ok := idx.Lookup('A')
	require.False(s.T(), ok)
}

// TestBuild applies the same rules to parsed records.
func (s *IndexSuite) TestBuild() {
	idx := ucd.Build([]ucd.Record{
		{Code: 'A', Category: "Lu"},
		{Code: 'a', Category: ""},
		{Code: 0x110000, Category: "Co"},
		{Code: '0', Category: "Nd"},
	})
	require.Equal(s.T(), []ucd.Category{"Lu", "Nd"}, idx.Categories())
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReadError(t *testing.T) {
	idx, err := ucd.Parse(failingReader{})
	require.Error(t, err)
	require.Nil(t, idx)
	require.Contains(t, err.Error(), "disk on fire")
}

func TestParseGolden(t *testing.T) {
	a, err := txtar.ParseFile(filepath.Join("testdata", "parse.txtar"))
	require.NoError(t, err)
	require.Zero(t, len(a.Files)%2, "archive must hold .in/.want pairs")

	for i := 0; i < len(a.Files); i += 2 {
		in, want := a.Files[i], a.Files[i+1]
		name := strings.TrimSuffix(in.Name, ".in")
		require.Equal(t, name+".want", want.Name)

		t.Run(name, func(t *testing.T) {
			idx, err := ucd.Parse(bytes.NewReader(in.Data))
			require.NoError(t, err)
			require.Equal(t, string(want.Data), dump(idx))
		})
	}
}

// dump lists each bucket on one line, in category order.
func dump(idx *ucd.Index) string {
	var b strings.Builder
	for _, c := range idx.Categories() {
		b.WriteString(string(c) + ":")
		for _, rec := range idx.Bucket(c) {
			b.WriteString(" " + rec.Label())
		}
		b.WriteString("\n")
	}
	return b.String()
}
