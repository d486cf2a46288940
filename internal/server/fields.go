package server

// Request field tables. Order is the order of SET assignments in a partial update.

var artistFields = []field{
	{keys: []string{"name"}, column: "name", kind: text},
}

var albumFields = []field{
	{keys: []string{"title"}, column: "title", kind: text},
	{keys: []string{"artistId", "artist_id"}, column: "artist_id", kind: integer},
}

var trackCreateFields = []field{
	{keys: []string{"trackName", "track_name"}, column: "name", kind: text},
	{keys: []string{"albumId", "album_id"}, column: "album_id", kind: integer},
	{keys: []string{"mediaTypeId", "media_type_id"}, column: "media_type_id", kind: integer},
	{keys: []string{"genreId", "genre_id"}, column: "genre_id", kind: integer},
	{keys: []string{"composer"}, column: "composer", kind: text},
	{keys: []string{"seconds"}, column: "milliseconds", kind: seconds},
	{keys: []string{"bytes"}, column: "bytes", kind: integer},
	{keys: []string{"unitPrice", "unit_price"}, column: "unit_price", kind: decimal},
}

var trackUpdateFields = []field{
	{keys: []string{"trackName", "track_name"}, column: "name", kind: text},
	{keys: []string{"albumId", "album_id"}, column: "album_id", kind: integer},
	{keys: []string{"mediaTypeId", "media_type_id"}, column: "media_type_id", kind: integer},
	{keys: []string{"genreId", "genre_id"}, column: "genre_id", kind: integer},
	{keys: []string{"composer"}, column: "composer", kind: text},
	{keys: []string{"milliseconds"}, column: "milliseconds", kind: integer},
	{keys: []string{"bytes"}, column: "bytes", kind: integer},
	{keys: []string{"unitPrice", "unit_price"}, column: "unit_price", kind: decimal},
}

var playlistFields = []field{
	{keys: []string{"name"}, column: "name", kind: text},
}

var customerFields = []field{
	{keys: []string{"firstName", "first_name"}, column: "first_name", kind: text},
	{keys: []string{"lastName", "last_name"}, column: "last_name", kind: text},
	{keys: []string{"company"}, column: "company", kind: text},
	{keys: []string{"address"}, column: "address", kind: text},
	{keys: []string{"city"}, column: "city", kind: text},
	{keys: []string{"state"}, column: "state", kind: text},
	{keys: []string{"country"}, column: "country", kind: text},
	{keys: []string{"postalCode", "postal_code"}, column: "postal_code", kind: numericText},
	{keys: []string{"phone"}, column: "phone", kind: text},
	{keys: []string{"fax"}, column: "fax", kind: text},
	{keys: []string{"email"}, column: "email", kind: text},
	{keys: []string{"supportRepId", "support_rep_id"}, column: "support_rep_id", kind: integer},
}

var employeeFields = []field{
	{keys: []string{"lastName", "last_name"}, column: "last_name", kind: text},
	{keys: []string{"firstName", "first_name"}, column: "first_name", kind: text},
	{keys: []string{"title"}, column: "title", kind: text},
	{keys: []string{"reportsTo", "reports_to"}, column: "reports_to", kind: integer},
	{keys: []string{"birthDate", "birth_date"}, column: "birth_date", kind: text},
	{keys: []string{"hireDate", "hire_date"}, column: "hire_date", kind: text},
	{keys: []string{"address"}, column: "address", kind: text},
	{keys: []string{"city"}, column: "city", kind: text},
	{keys: []string{"state"}, column: "state", kind: text},
	{keys: []string{"country"}, column: "country", kind: text},
	{keys: []string{"postalCode", "postal_code"}, column: "postal_code", kind: numericText},
	{keys: []string{"phone"}, column: "phone", kind: text},
	{keys: []string{"fax"}, column: "fax", kind: text},
	{keys: []string{"email"}, column: "email", kind: text},
}
