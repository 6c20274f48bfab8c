package cli

import (
	"flag"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// parseWithID accepts "<id> [flags]" as well as "[flags] <id>".
func parseWithID(fs *flag.FlagSet, args []string) (int64, error) {
	var raw string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		raw, args = args[0], args[1:]
	}
	if err := parseFlags(fs, args); err != nil {
		return 0, err
	}
	if raw == "" {
		raw = fs.Arg(0)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrUsage, "%s requires a product id", fs.Name())
	}

	return id, nil
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)

	return nil
}

// draftFlags are shared by product-create and product-update.
type draftFlags struct {
	cmd         *flag.FlagSet
	name        *string
	description *string
	price       *string
	quantity    *int
	discount    *string
	promotion   *string
	model       *string
	dimension   *string
	active      *bool
	images      *stringList
}

func newDraftFlags(cmd *flag.FlagSet) *draftFlags {
	images := &stringList{}
	cmd.Var(images, "image", "Image file to upload (repeatable)")

	return &draftFlags{
		cmd:         cmd,
		name:        cmd.String("name", "", "Product name"),
		description: cmd.String("description", "", "Description"),
		price:       cmd.String("price", "", "Unit price, e.g. 129.99"),
		quantity:    cmd.Int("quantity", 0, "Units in stock"),
		discount:    cmd.String("discount", "", "Discount percentage 0..100"),
		promotion:   cmd.String("promotion", "", "Promotion banner text"),
		model:       cmd.String("model", "", "Brand, e.g. Ferrari"),
		dimension:   cmd.String("dimension", "", "Scale, e.g. 1:18"),
		active:      cmd.Bool("active", true, "Whether the product is listed"),
		images:      images,
	}
}

// draft converts the flags the user actually set into a ProductDraft. Images are attached by the caller.
func (f *draftFlags) draft() (*entity.ProductDraft, error) {
	set := map[string]bool{}
	f.cmd.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	draft := &entity.ProductDraft{}
	if set["name"] {
		draft.Name = f.name
	}
	if set["description"] {
		draft.Description = f.description
	}
	if set["promotion"] {
		draft.PromotionText = f.promotion
	}
	if set["model"] {
		draft.ModelName = f.model
	}
	if set["dimension"] {
		draft.Dimension = f.dimension
	}
	if set["quantity"] {
		draft.Quantity = f.quantity
	}
	if set["active"] {
		draft.IsActive = f.active
	}
	if set["price"] {
		price, err := decimal.NewFromString(*f.price)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "invalid price %q", *f.price)
		}
		draft.Price = &price
	}
	if set["discount"] {
		discount, err := decimal.NewFromString(*f.discount)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "invalid discount %q", *f.discount)
		}
		draft.DiscountPercentage = &discount
	}

	return draft, nil
}
