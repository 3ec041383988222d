package services

// Services defined in this package:
// - AuthService: verifies credentials and issues session tokens
// - StudentService: CRUD and search over student records
// - ExportService: CSV serialization of the full record set
