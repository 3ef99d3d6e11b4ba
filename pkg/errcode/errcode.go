package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBTruncateTableError
	DBCountRowsError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError
	SchemaIndexError

	// Import errors
	ImportSourceNotFoundError
	ImportOpenSourceError
	ImportReadSourceError
	ImportLookupError
	ImportCopyError
	ImportIndexError

	// Build errors
	BuildNoPlacesError
	BuildClearTablesError
	BuildReadPlacesError
	BuildReadNamesError
	BuildWriteError
	BuildIndexError
	BuildDedupError
	BuildVacuumError

	// Export errors
	ExportNoDataError
	ExportSQLiteError
	ExportCopyError
	ExportS3ConfigError
	ExportS3UploadError
)
