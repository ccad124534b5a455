package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judgematch/internal/config"
	"github.com/judgematch/internal/fjc"
	"github.com/judgematch/internal/match"
)

// sourceTables builds the three-table fixture for two judges on the same
// court in 2001: John Quincy Smith and Jane Smith.
func sourceTables() (service, career, demographics *fjc.Table) {
	service = &fjc.Table{
		Columns: []string{"nid", "Court Name", "Appointing President",
			"Party of Appointing President", "ABA Rating", "Senate Vote Type",
			"Ayes/Nays", "Commission Date", "Termination Date"},
		Rows: []fjc.Row{
			{
				"nid": "1", "Court Name": "U.S. Court of Appeals for the Fifth Circuit",
				"Appointing President": "William J. Clinton",
				"Party of Appointing President": "Democratic",
				"ABA Rating": "Well Qualified", "Senate Vote Type": "Recorded",
				"Ayes/Nays": "60/40", "Commission Date": "2001-01-15",
				"Termination Date": "2001-12-31",
			},
			{
				"nid": "2", "Court Name": "U.S. Court of Appeals for the Fifth Circuit",
				"Appointing President": "George W. Bush",
				"Party of Appointing President": "Republican",
				"ABA Rating": "Qualified", "Senate Vote Type": "Voice",
				"Ayes/Nays": "", "Commission Date": "2001-06-01",
				"Termination Date": "2001-12-31",
			},
		},
	}
	career = &fjc.Table{
		Columns: []string{"nid", "Professional Career"},
		Rows: []fjc.Row{
			{"nid": "1", "Professional Career": "private practice"},
			{"nid": "2", "Professional Career": "state judge"},
		},
	}
	demographics = &fjc.Table{
		Columns: []string{"nid", "Judge Name", "First Name", "Middle Name",
			"Last Name", "Gender", "Race or Ethnicity"},
		Rows: []fjc.Row{
			{
				"nid": "1", "Judge Name": "John Quincy Smith", "First Name": "John",
				"Middle Name": "Quincy", "Last Name": "Smith", "Gender": "Male",
				"Race or Ethnicity": "White",
			},
			{
				"nid": "2", "Judge Name": "Jane Smith", "First Name": "Jane",
				"Middle Name": "", "Last Name": "Smith", "Gender": "Female",
				"Race or Ethnicity": "African American",
			},
		},
	}
	return service, career, demographics
}

func testConstants() config.Constants {
	consts := config.Defaults()
	consts.WindowStart = 2000
	consts.WindowEnd = 2021
	consts.PresentYear = 2021
	return consts
}

func TestTransformEndToEnd(t *testing.T) {
	service, career, demographics := sourceTables()
	result, err := Transform(service, career, demographics, testConstants())
	require.NoError(t, err)
	require.Len(t, result.Judges, 2)

	john := result.Judges[0]
	assert.Equal(t, 1, john.NID)
	assert.Equal(t, 5, john.CourtNum)
	assert.Equal(t, 5, john.CircuitNum)
	assert.Equal(t, -1, john.Party)
	assert.Equal(t, 3, john.ABARating)
	assert.Equal(t, 42, john.PresNum)
	assert.InDelta(t, 0.6, john.SenatePercent, 1e-9)
	assert.False(t, john.Woman)
	assert.False(t, john.Minority)
	assert.Equal(t, "JOHN QUINCY SMITH", john.Perms[0])

	jane := result.Judges[1]
	assert.Equal(t, 1, jane.Party)
	assert.Equal(t, 1.0, jane.SenatePercent)
	assert.True(t, jane.Woman)
	assert.True(t, jane.Minority)
	assert.Equal(t, "JANE SMITH", jane.Perms[0], "empty middle collapses")

	// Initial-only context resolves to John alone; Jane has no Q variant.
	name, ok := result.Index.Resolve(match.Query{Name: "J Q SMITH", Year: 2001, CourtNum: 5})
	require.True(t, ok)
	assert.Equal(t, "John Quincy Smith", name)

	// The bare surname collides between the two judges; Jane's rows were
	// inserted last, so last-write-wins makes her the retrievable one.
	name, ok = result.Index.Resolve(match.Query{Name: "SMITH", Year: 2001, CourtNum: 5})
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", name)
}

func TestTransformDeterminism(t *testing.T) {
	s1, c1, d1 := sourceTables()
	s2, c2, d2 := sourceTables()

	a, err := Transform(s1, c1, d1, testConstants())
	require.NoError(t, err)
	b, err := Transform(s2, c2, d2, testConstants())
	require.NoError(t, err)

	assert.Equal(t, a.Judges, b.Judges)
	assert.Equal(t, a.Rows, b.Rows)
}

func TestTransformMissingJoinKey(t *testing.T) {
	service, career, demographics := sourceTables()
	career.Columns = []string{"jid"}
	career.Rows = []fjc.Row{{"jid": "1"}}

	_, err := Transform(service, career, demographics, testConstants())
	assert.Error(t, err)
}

func TestTransformAppliesOverrides(t *testing.T) {
	service, career, demographics := sourceTables()

	consts := testConstants()
	consts.Overrides = []config.Override{
		{NID: 2, Field: "last_name", Value: "Randall"},
		{NID: 424242, Field: "first_name", Value: "Ghost"},
	}

	result, err := Transform(service, career, demographics, consts)
	require.NoError(t, err)

	jane := result.Judges[1]
	assert.Equal(t, "Randall", jane.LastName)
	assert.Equal(t, "JANE RANDALL", jane.Perms[0], "correction feeds permutations")
}

func TestNameRowsExplosion(t *testing.T) {
	judges := []fjc.Judge{
		{
			NID: 1, JudgeName: "Jane Smith", FirstName: "Jane", LastName: "Smith",
			CourtNum: 5, CircuitNum: 5, StartYear: 2001, EndYear: 2003,
			Perms: [7]string{"JANE SMITH", "JANE SMITH", "JANE SMITH",
				"J SMITH", "J SMITH", "J SMITH", "SMITH"},
		},
	}

	rows := NameRows(judges)

	// 3 service years x 7 permutations, duplicates included here and
	// collapsed by the index build.
	assert.Len(t, rows, 21)
	assert.Equal(t, 2001, rows[0].Year)
	assert.Equal(t, 2003, rows[len(rows)-1].Year)
	for _, r := range rows {
		assert.Equal(t, "Jane Smith", r.JudgeName)
		assert.NotEmpty(t, r.Perm)
	}
}

func TestNameRowsSkipsEmptyPerms(t *testing.T) {
	judges := []fjc.Judge{
		{
			NID: 1, JudgeName: "Cher", CourtNum: 5, CircuitNum: 5,
			StartYear: 2001, EndYear: 2001,
			// Surname only: the initial-bearing variants are empty.
			Perms: [7]string{"CHER", "", "", "", "", "", "CHER"},
		},
	}

	rows := NameRows(judges)
	assert.Len(t, rows, 2)
}
