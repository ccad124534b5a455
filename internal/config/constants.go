package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CourtCode carries the numeric identifiers for one court: its own court
// number and the number of the circuit it sits in.
type CourtCode struct {
	Court   int `yaml:"court"`
	Circuit int `yaml:"circuit"`
}

// Override is a single known correction to the source data, applied by the
// pipeline before name permutations are generated. A target NID that is not
// present in the data is skipped without error.
type Override struct {
	NID   int    `yaml:"nid"`
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Constants is the immutable static configuration consumed by the pipeline:
// column rename maps per source file, court and circuit number lookups,
// president numbers, the service window bounds, and the known data
// corrections. It is passed explicitly into each pipeline stage.
type Constants struct {
	// WindowStart and WindowEnd bound the analysis window in years.
	// PresentYear substitutes for a missing termination date.
	WindowStart int `yaml:"window_start"`
	WindowEnd   int `yaml:"window_end"`
	PresentYear int `yaml:"present_year"`

	Courts     map[string]CourtCode `yaml:"courts"`
	Presidents map[string]int       `yaml:"presidents"`

	ServiceRenames      map[string]string `yaml:"service_renames"`
	CareerRenames       map[string]string `yaml:"career_renames"`
	DemographicsRenames map[string]string `yaml:"demographics_renames"`

	// Columns is the ordered set of merged columns kept by the normalizer.
	Columns []string `yaml:"columns"`

	Overrides []Override `yaml:"overrides"`
}

// CourtNum returns the court number for a court name, 0 when unknown.
func (c Constants) CourtNum(court string) int {
	return c.Courts[court].Court
}

// CircuitNum returns the circuit number for a court name, 0 when unknown.
func (c Constants) CircuitNum(court string) int {
	return c.Courts[court].Circuit
}

// Load returns the default constants overlaid with values from the YAML file
// at path. An empty path returns the defaults untouched.
func Load(path string) (Constants, error) {
	c := Defaults()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read constants file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse constants file: %w", err)
	}
	return c, nil
}

// Defaults returns the built-in static configuration. Site-specific values
// (new courts, extra overrides, a moved window) belong in a YAML overlay
// rather than edits here.
func Defaults() Constants {
	return Constants{
		WindowStart: 2000,
		WindowEnd:   2021,
		PresentYear: 2021,

		Courts:     defaultCourts(),
		Presidents: defaultPresidents(),

		ServiceRenames: map[string]string{
			"court_name":                    "court",
			"appointing_president":          "president",
			"party_of_appointing_president": "party",
			"recess_appointment_date":       "recess",
			"commission_date":               "start_date",
			"ayes/nays":                     "senate_vote",
		},
		CareerRenames: map[string]string{
			"professional_career": "career",
		},
		DemographicsRenames: map[string]string{
			"race_or_ethnicity": "race",
		},

		Columns: []string{
			"nid", "judge_name", "first_name", "middle_name", "last_name",
			"court", "president", "party", "aba_rating", "recess",
			"senate_vote_type", "senate_vote", "start_date",
			"termination_date", "gender", "race",
		},

		Overrides: []Override{
			{NID: 1386716, Field: "last_name", Value: "Randall"},
			{NID: 1382851, Field: "first_name", Value: "Sam"},
		},
	}
}

// defaultCourts maps FJC court names to court and circuit numbers. Courts of
// appeals carry their circuit as the court number; district courts are
// numbered from 100 upward in circuit order. Territorial and specialty
// courts absent here resolve to 0 and only match through year and bare-name
// keys.
func defaultCourts() map[string]CourtCode {
	return map[string]CourtCode{
		"U.S. Court of Appeals for the First Circuit":                       {Court: 1, Circuit: 1},
		"U.S. Court of Appeals for the Second Circuit":                      {Court: 2, Circuit: 2},
		"U.S. Court of Appeals for the Third Circuit":                       {Court: 3, Circuit: 3},
		"U.S. Court of Appeals for the Fourth Circuit":                      {Court: 4, Circuit: 4},
		"U.S. Court of Appeals for the Fifth Circuit":                       {Court: 5, Circuit: 5},
		"U.S. Court of Appeals for the Sixth Circuit":                       {Court: 6, Circuit: 6},
		"U.S. Court of Appeals for the Seventh Circuit":                     {Court: 7, Circuit: 7},
		"U.S. Court of Appeals for the Eighth Circuit":                      {Court: 8, Circuit: 8},
		"U.S. Court of Appeals for the Ninth Circuit":                       {Court: 9, Circuit: 9},
		"U.S. Court of Appeals for the Tenth Circuit":                       {Court: 10, Circuit: 10},
		"U.S. Court of Appeals for the Eleventh Circuit":                    {Court: 11, Circuit: 11},
		"U.S. Court of Appeals for the District of Columbia Circuit":        {Court: 12, Circuit: 12},
		"U.S. Court of Appeals for the Federal Circuit":                     {Court: 13, Circuit: 13},
		"U.S. District Court for the District of Maine":                     {Court: 100, Circuit: 1},
		"U.S. District Court for the District of Massachusetts":             {Court: 101, Circuit: 1},
		"U.S. District Court for the District of New Hampshire":             {Court: 102, Circuit: 1},
		"U.S. District Court for the District of Puerto Rico":               {Court: 103, Circuit: 1},
		"U.S. District Court for the District of Rhode Island":              {Court: 104, Circuit: 1},
		"U.S. District Court for the District of Connecticut":               {Court: 110, Circuit: 2},
		"U.S. District Court for the Eastern District of New York":          {Court: 111, Circuit: 2},
		"U.S. District Court for the Northern District of New York":         {Court: 112, Circuit: 2},
		"U.S. District Court for the Southern District of New York":         {Court: 113, Circuit: 2},
		"U.S. District Court for the Western District of New York":          {Court: 114, Circuit: 2},
		"U.S. District Court for the District of Vermont":                   {Court: 115, Circuit: 2},
		"U.S. District Court for the District of Delaware":                  {Court: 120, Circuit: 3},
		"U.S. District Court for the District of New Jersey":                {Court: 121, Circuit: 3},
		"U.S. District Court for the Eastern District of Pennsylvania":      {Court: 122, Circuit: 3},
		"U.S. District Court for the Middle District of Pennsylvania":       {Court: 123, Circuit: 3},
		"U.S. District Court for the Western District of Pennsylvania":      {Court: 124, Circuit: 3},
		"U.S. District Court for the District of the Virgin Islands":        {Court: 125, Circuit: 3},
		"U.S. District Court for the District of Maryland":                  {Court: 130, Circuit: 4},
		"U.S. District Court for the Eastern District of North Carolina":    {Court: 131, Circuit: 4},
		"U.S. District Court for the Middle District of North Carolina":     {Court: 132, Circuit: 4},
		"U.S. District Court for the Western District of North Carolina":    {Court: 133, Circuit: 4},
		"U.S. District Court for the District of South Carolina":            {Court: 134, Circuit: 4},
		"U.S. District Court for the Eastern District of Virginia":          {Court: 135, Circuit: 4},
		"U.S. District Court for the Western District of Virginia":          {Court: 136, Circuit: 4},
		"U.S. District Court for the Northern District of West Virginia":    {Court: 137, Circuit: 4},
		"U.S. District Court for the Southern District of West Virginia":    {Court: 138, Circuit: 4},
		"U.S. District Court for the Eastern District of Louisiana":         {Court: 140, Circuit: 5},
		"U.S. District Court for the Middle District of Louisiana":          {Court: 141, Circuit: 5},
		"U.S. District Court for the Western District of Louisiana":         {Court: 142, Circuit: 5},
		"U.S. District Court for the Northern District of Mississippi":      {Court: 143, Circuit: 5},
		"U.S. District Court for the Southern District of Mississippi":      {Court: 144, Circuit: 5},
		"U.S. District Court for the Eastern District of Texas":             {Court: 145, Circuit: 5},
		"U.S. District Court for the Northern District of Texas":            {Court: 146, Circuit: 5},
		"U.S. District Court for the Southern District of Texas":            {Court: 147, Circuit: 5},
		"U.S. District Court for the Western District of Texas":             {Court: 148, Circuit: 5},
		"U.S. District Court for the Eastern District of Kentucky":          {Court: 150, Circuit: 6},
		"U.S. District Court for the Western District of Kentucky":          {Court: 151, Circuit: 6},
		"U.S. District Court for the Eastern District of Michigan":          {Court: 152, Circuit: 6},
		"U.S. District Court for the Western District of Michigan":          {Court: 153, Circuit: 6},
		"U.S. District Court for the Northern District of Ohio":             {Court: 154, Circuit: 6},
		"U.S. District Court for the Southern District of Ohio":             {Court: 155, Circuit: 6},
		"U.S. District Court for the Eastern District of Tennessee":         {Court: 156, Circuit: 6},
		"U.S. District Court for the Middle District of Tennessee":          {Court: 157, Circuit: 6},
		"U.S. District Court for the Western District of Tennessee":         {Court: 158, Circuit: 6},
		"U.S. District Court for the Central District of Illinois":          {Court: 160, Circuit: 7},
		"U.S. District Court for the Northern District of Illinois":         {Court: 161, Circuit: 7},
		"U.S. District Court for the Southern District of Illinois":         {Court: 162, Circuit: 7},
		"U.S. District Court for the Northern District of Indiana":          {Court: 163, Circuit: 7},
		"U.S. District Court for the Southern District of Indiana":          {Court: 164, Circuit: 7},
		"U.S. District Court for the Eastern District of Wisconsin":         {Court: 165, Circuit: 7},
		"U.S. District Court for the Western District of Wisconsin":         {Court: 166, Circuit: 7},
		"U.S. District Court for the Eastern District of Arkansas":          {Court: 170, Circuit: 8},
		"U.S. District Court for the Western District of Arkansas":          {Court: 171, Circuit: 8},
		"U.S. District Court for the Northern District of Iowa":             {Court: 172, Circuit: 8},
		"U.S. District Court for the Southern District of Iowa":             {Court: 173, Circuit: 8},
		"U.S. District Court for the District of Minnesota":                 {Court: 174, Circuit: 8},
		"U.S. District Court for the Eastern District of Missouri":          {Court: 175, Circuit: 8},
		"U.S. District Court for the Western District of Missouri":          {Court: 176, Circuit: 8},
		"U.S. District Court for the District of Nebraska":                  {Court: 177, Circuit: 8},
		"U.S. District Court for the District of North Dakota":              {Court: 178, Circuit: 8},
		"U.S. District Court for the District of South Dakota":              {Court: 179, Circuit: 8},
		"U.S. District Court for the District of Alaska":                    {Court: 180, Circuit: 9},
		"U.S. District Court for the District of Arizona":                   {Court: 181, Circuit: 9},
		"U.S. District Court for the Central District of California":        {Court: 182, Circuit: 9},
		"U.S. District Court for the Eastern District of California":        {Court: 183, Circuit: 9},
		"U.S. District Court for the Northern District of California":       {Court: 184, Circuit: 9},
		"U.S. District Court for the Southern District of California":       {Court: 185, Circuit: 9},
		"U.S. District Court for the District of Hawaii":                    {Court: 186, Circuit: 9},
		"U.S. District Court for the District of Idaho":                     {Court: 187, Circuit: 9},
		"U.S. District Court for the District of Montana":                   {Court: 188, Circuit: 9},
		"U.S. District Court for the District of Nevada":                    {Court: 189, Circuit: 9},
		"U.S. District Court for the District of Oregon":                    {Court: 190, Circuit: 9},
		"U.S. District Court for the Eastern District of Washington":        {Court: 191, Circuit: 9},
		"U.S. District Court for the Western District of Washington":        {Court: 192, Circuit: 9},
		"U.S. District Court for the District of Guam":                      {Court: 193, Circuit: 9},
		"U.S. District Court for the District of the Northern Mariana Islands": {Court: 194, Circuit: 9},
		"U.S. District Court for the District of Colorado":                  {Court: 200, Circuit: 10},
		"U.S. District Court for the District of Kansas":                    {Court: 201, Circuit: 10},
		"U.S. District Court for the District of New Mexico":                {Court: 202, Circuit: 10},
		"U.S. District Court for the Eastern District of Oklahoma":          {Court: 203, Circuit: 10},
		"U.S. District Court for the Northern District of Oklahoma":         {Court: 204, Circuit: 10},
		"U.S. District Court for the Western District of Oklahoma":          {Court: 205, Circuit: 10},
		"U.S. District Court for the District of Utah":                      {Court: 206, Circuit: 10},
		"U.S. District Court for the District of Wyoming":                   {Court: 207, Circuit: 10},
		"U.S. District Court for the Middle District of Alabama":            {Court: 210, Circuit: 11},
		"U.S. District Court for the Northern District of Alabama":          {Court: 211, Circuit: 11},
		"U.S. District Court for the Southern District of Alabama":          {Court: 212, Circuit: 11},
		"U.S. District Court for the Middle District of Florida":            {Court: 213, Circuit: 11},
		"U.S. District Court for the Northern District of Florida":          {Court: 214, Circuit: 11},
		"U.S. District Court for the Southern District of Florida":          {Court: 215, Circuit: 11},
		"U.S. District Court for the Middle District of Georgia":            {Court: 216, Circuit: 11},
		"U.S. District Court for the Northern District of Georgia":          {Court: 217, Circuit: 11},
		"U.S. District Court for the Southern District of Georgia":          {Court: 218, Circuit: 11},
		"U.S. District Court for the District of Columbia":                  {Court: 220, Circuit: 12},
		"U.S. Court of International Trade":                                 {Court: 230, Circuit: 13},
	}
}

func defaultPresidents() map[string]int {
	return map[string]int{
		"George Washington":     1,
		"John Adams":            2,
		"Thomas Jefferson":      3,
		"James Madison":         4,
		"James Monroe":          5,
		"John Quincy Adams":     6,
		"Andrew Jackson":        7,
		"Martin Van Buren":      8,
		"William Henry Harrison": 9,
		"John Tyler":            10,
		"James K. Polk":         11,
		"Zachary Taylor":        12,
		"Millard Fillmore":      13,
		"Franklin Pierce":       14,
		"James Buchanan":        15,
		"Abraham Lincoln":       16,
		"Andrew Johnson":        17,
		"Ulysses S. Grant":      18,
		"Rutherford B. Hayes":   19,
		"James A. Garfield":     20,
		"Chester A. Arthur":     21,
		"Grover Cleveland":      22,
		"Benjamin Harrison":     23,
		"William McKinley":      25,
		"Theodore Roosevelt":    26,
		"William H. Taft":       27,
		"Woodrow Wilson":        28,
		"Warren G. Harding":     29,
		"Calvin Coolidge":       30,
		"Herbert Hoover":        31,
		"Franklin D. Roosevelt": 32,
		"Harry S Truman":        33,
		"Dwight D. Eisenhower":  34,
		"John F. Kennedy":       35,
		"Lyndon B. Johnson":     36,
		"Richard M. Nixon":      37,
		"Gerald Ford":           38,
		"Jimmy Carter":          39,
		"Ronald Reagan":         40,
		"George H.W. Bush":      41,
		"William J. Clinton":    42,
		"George W. Bush":        43,
		"Barack Obama":          44,
		"Donald J. Trump":       45,
		"Joseph R. Biden":       46,
	}
}
