package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/f3rmion/unichar/internal/store"
	"github.com/f3rmion/unichar/internal/ucd"
)

const data = `0021;EXCLAMATION MARK;Po;0;ON;;;;;N;;;;;
0030;DIGIT ZERO;Nd;0;EN;;0;0;0;N;;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;
E000;<Private Use, First>;Qq;0;L;;;;;N;;;;;
1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;
`

// StoreSuite round-trips an index through SQLite.
type StoreSuite struct {
	suite.Suite
	ctx  context.Context
	idx  *ucd.Index
	path string
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.idx = ucd.ParseString(data)
	s.path = filepath.Join(s.T().TempDir(), "chars.db")
}

// TestRoundTrip keeps categories, buckets and their order.
func (s *StoreSuite) TestRoundTrip() {
	require.NoError(s.T(), store.Export(s.ctx, s.path, s.idx))

	got, err := store.Load(s.ctx, s.path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.idx.Categories(), got.Categories())
	for _, c := range s.idx.Categories() {
		require.Equal(s.T(), s.idx.Bucket(c), got.Bucket(c), "bucket %s", c)
	}
	require.Equal(s.T(), s.idx.Len(), got.Len())
}

// TestExportReplacesFile overwrites an earlier export.
func (s *StoreSuite) TestExportReplacesFile() {
	require.NoError(s.T(), store.Export(s.ctx, s.path, s.idx))
	require.NoError(s.T(), store.Export(s.ctx, s.path, ucd.ParseString("0041;A;Lu\n")))

	got, err := store.Load(s.ctx, s.path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, got.Len())
}

// TestSummary counts characters per category in stored order.
func (s *StoreSuite) TestSummary() {
	require.NoError(s.T(), store.Export(s.ctx, s.path, s.idx))

	summary, err := store.Summary(s.ctx, s.path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []store.CategoryCount{
		{Category: "Po", Description: "Other Punctuation", Count: 1},
		{Category: "Nd", Description: "Decimal Number", Count: 1},
		{Category: "Lu", Description: "Uppercase Letter", Count: 2},
		{Category: "Qq", Description: "", Count: 1},
		{Category: "So", Description: "Other Symbol", Count: 1},
	}, summary)
}

// TestLoadMissing fails without creating a database file.
func (s *StoreSuite) TestLoadMissing() {
	idx, err := store.Load(s.ctx, s.path)
	require.Nil(s.T(), idx)
	require.ErrorIs(s.T(), err, ucd.ErrLoadFailure)

	_, err = os.Stat(s.path)
	require.ErrorIs(s.T(), err, os.ErrNotExist)
}

// TestLoadNotAnExport reports a load failure for foreign files.
func (s *StoreSuite) TestLoadNotAnExport() {
	require.NoError(s.T(), os.WriteFile(s.path, []byte("0041;A;Lu\n"), 0644))

	_, err := store.Load(s.ctx, s.path)
	require.ErrorIs(s.T(), err, ucd.ErrLoadFailure)
}

// TestRegisteredWithOpen lets Open read exports by extension.
func (s *StoreSuite) TestRegisteredWithOpen() {
	require.NoError(s.T(), store.Export(s.ctx, s.path, s.idx))

	idx, source, err := ucd.Open(s.ctx, []string{s.path})
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.path, source)
	require.Equal(s.T(), s.idx.Categories(), idx.Categories())
}

// TestEmptyIndex exports and loads with no characters.
func (s *StoreSuite) TestEmptyIndex() {
	require.NoError(s.T(), store.Export(s.ctx, s.path, ucd.ParseString("")))

	idx, err := store.Load(s.ctx, s.path)
	require.NoError(s.T(), err)
	require.Zero(s.T(), idx.Len())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
