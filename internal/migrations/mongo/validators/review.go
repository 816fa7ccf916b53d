package validators

import "go.mongodb.org/mongo-driver/bson"

var ReviewValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"uid",
			"roomId",
			"rating",
			"comment",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"uid": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"roomId": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"rating": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  1,
				"maximum":  5,
			},

			"comment": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
