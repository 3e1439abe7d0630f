package schema

// Group represents the groups table - a student club or organization
type Group struct {
	ID int64 `gorm:"column:id;primaryKey"`
	// Name is the group display name
	Name   string `gorm:"column:name;not null;type:text"`
	Campus string `gorm:"column:campus;type:text"`
	// Categories is a JSON-encoded list of category labels
	Categories  string `gorm:"column:categories;type:text"`
	Description string `gorm:"column:description;type:text"`
	// Members is the advertised member count from the fixture
	Members int64  `gorm:"column:members"`
	Website string `gorm:"column:website;type:text"`
	Contact string `gorm:"column:contact;type:text"`
	Mission string `gorm:"column:mission;type:text"`
	// Benefits is a JSON-encoded list of membership benefits
	Benefits string `gorm:"column:benefits;type:text"`
}

// TableName specifies the table name for the Group model
func (Group) TableName() string {
	return "groups"
}

// Membership represents the memberships table - the (account, group) pairs of
// current members. No payload; existence is the fact.
type Membership struct {
	AccountID int64 `gorm:"column:account_id;primaryKey;autoIncrement:false"`
	GroupID   int64 `gorm:"column:group_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the Membership model
func (Membership) TableName() string {
	return "memberships"
}
