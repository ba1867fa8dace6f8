package database

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// NewFirebaseDatabase create a realtime database client.
// Inline JSON wins over the credentials file; neither means application default credentials.
func NewFirebaseDatabase(ctx context.Context, c FirebaseConnection) (*db.Client, error) {
	var opts []option.ClientOption
	switch {
	case c.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(c.CredentialsJSON)))
	case c.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: c.DatabaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化 firebase app 失敗: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("初始化 firebase database[%s] 失敗: %w", c.DatabaseURL, err)
	}
	return client, nil
}
