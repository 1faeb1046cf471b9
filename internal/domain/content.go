package domain

// Station 是苦路十四处中的一处。ID 即站点编号 (1..14)。
type Station struct {
	ID              int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title           string `gorm:"size:255;not null" json:"title"`
	ImageURL        string `gorm:"size:512" json:"image_url"`
	Versicle        string `gorm:"type:text" json:"versicle"`
	Meditation      string `gorm:"type:text" json:"meditation"`
	Prayer          string `gorm:"type:text" json:"prayer"`
	StandardPrayers string `gorm:"type:text" json:"standard_prayers"`
	Hymn            string `gorm:"type:text" json:"hymn"`
}

func (Station) TableName() string { return "stations" }

// IntroText 开场祷文，表中只有一条记录。
type IntroText struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Title string `gorm:"size:255;not null" json:"title"`
	Text  string `gorm:"type:text;not null" json:"text"`
}

func (IntroText) TableName() string { return "intro" }

// FinalPrayer 结束祷文。Position 保留种子数据中的顺序。
type FinalPrayer struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Position int    `gorm:"index;not null" json:"-"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Text     string `gorm:"type:text;not null" json:"text"`
}

func (FinalPrayer) TableName() string { return "final_prayers" }

// ContentSeed 是种子文件的结构，对应 via_sacra_data.json。
type ContentSeed struct {
	Intro        *IntroText    `json:"intro"`
	Stations     []Station     `json:"stations"`
	FinalPrayers []FinalPrayer `json:"final_prayers"`
}

// ContentCounts 记录三类内容当前的记录数。
type ContentCounts struct {
	Intro        int64
	Stations     int64
	FinalPrayers int64
}

// Empty 三类内容都没有记录时返回 true。
func (c ContentCounts) Empty() bool {
	return c.Intro == 0 && c.Stations == 0 && c.FinalPrayers == 0
}
