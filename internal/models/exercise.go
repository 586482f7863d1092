package models

// Exercise is a library entry that may receive footage from a Clip
type Exercise struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Instructions string `json:"instructions" gorm:"type:text"`
	Enrichment   string `json:"enrichment" gorm:"type:text"`
	VideoURL     string `json:"videoUrl" gorm:"column:video_url;size:255"`
	CropID       *uint  `json:"crop_id" gorm:"column:crop_id;index"`
	Tags         []Tag  `json:"tags" gorm:"many2many:exercise_tags;joinForeignKey:ExID;joinReferences:TagID"`
}

// TableName returns the table name for the Exercise model
func (Exercise) TableName() string {
	return "exercises"
}

// Tag groups exercises
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for the Tag model
func (Tag) TableName() string {
	return "tags"
}
