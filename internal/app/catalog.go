package app

type CatalogImportResult struct {
	Path         string
	Format       string
	CourseCount  int
	SectionCount int
	SlotCount    int
}
