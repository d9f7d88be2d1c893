package contextkeys

// Custom type avoids collisions with other context keys.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or test transaction) in context.
const DBContextKey = contextKey("db")
