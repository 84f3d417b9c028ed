package dtos

// IndicatorScore is one weighted component of a country ranking. Value is
// nil when the country has no recorded indicator for the key; the weight is
// then excluded from the average instead of counting as zero.
type IndicatorScore struct {
	Key    string   `json:"key"`
	Weight float64  `json:"weight"`
	Value  *float64 `json:"value"`
}

type CountryRanking struct {
	CountryID   int              `json:"countryId"`
	CountryName string           `json:"countryName"`
	ISO2        string           `json:"iso2"`
	Score       int              `json:"score"`
	Breakdown   []IndicatorScore `json:"breakdown"`
}
