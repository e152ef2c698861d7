package schema

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ../repo --feature sql/upsert,sql/lock ./
