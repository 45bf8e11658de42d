// Command storefront is an interactive terminal client for the e-commerce
// gateway: log in, browse the catalog, manage the cart, quote shipping and
// complete a purchase.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcmexdev/storefront-client/internal/config"
	"github.com/jcmexdev/storefront-client/internal/coordinator/checkoutlog"
	checkoutsqlite "github.com/jcmexdev/storefront-client/internal/coordinator/checkoutlog/sqlite"
	"github.com/jcmexdev/storefront-client/internal/pkg/cache"
	"github.com/jcmexdev/storefront-client/internal/pkg/httpx"
	"github.com/jcmexdev/storefront-client/internal/pkg/telemetry"
	"github.com/jcmexdev/storefront-client/internal/storefront/app"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/infra/adapters/service"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	shutdown, err := telemetry.SetupTracer(ctx, "storefront-client")
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	httpClient := &http.Client{
		Transport: &httpx.RequestIDTransport{},
		Timeout:   cfg.Gateway.HTTPTimeout,
	}
	gateway, err := service.NewClient("gateway", cfg.Gateway.BaseURL, httpClient, cfg.Gateway.BreakerFailureThreshold)
	if err != nil {
		slog.Error("invalid gateway configuration", "error", err)
		os.Exit(1)
	}

	var catalogCache cache.Cache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()
		catalogCache = cache.NewRedisCache(rdb, "storefront")
	}

	var logRepo checkoutlog.Repository
	if cfg.Checkout.LogPath != "" {
		repo, err := checkoutsqlite.Open(cfg.Checkout.LogPath)
		if err != nil {
			slog.Error("failed to open checkout log", "path", cfg.Checkout.LogPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		logRepo = repo
	}

	a := app.New(app.Services{
		Catalog:         service.NewCatalogHTTP(gateway, catalogCache, cfg.Redis.CatalogCacheTTL),
		Cart:            service.NewCartHTTP(gateway),
		Shipping:        service.NewShippingHTTP(gateway),
		Checkout:        service.NewCheckoutHTTP(gateway),
		Recommendations: service.NewRecommendationHTTP(gateway),
	}, logRepo)

	slog.Info("storefront client started", "gateway", cfg.Gateway.BaseURL)
	runREPL(ctx, a)
}

const usage = `commands:
  login <user>       start a session
  products           list the catalog
  recs               list recommendations
  add <product-id>   add one unit to the cart
  remove <product-id>
  cart               show the cart
  quote <cep>        quote shipping, e.g. quote 01310-100
  ship <method>      select a quoted option, e.g. ship SEDEX
  pay <method>       set the payment method, e.g. pay pix
  checkout           enter checkout / confirm the purchase
  back               return from checkout to the store
  orders             show order history
  quit`

func runREPL(ctx context.Context, a *app.App) {
	fmt.Println(usage)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s] > ", a.View())
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "help":
			fmt.Println(usage)
		case "quit", "exit":
			return
		case "login":
			if !a.LogIn(ctx, arg) {
				fmt.Println("username cannot be empty")
			}
		case "products":
			printProducts(a.Products())
		case "recs":
			printProducts(a.Recommendations())
		case "add":
			doAdd(ctx, a, arg)
		case "remove":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("usage: remove <product-id>")
				break
			}
			_ = a.RemoveItem(ctx, id)
		case "cart":
			printCart(a.Cart())
		case "quote":
			if err := a.RequestQuote(ctx, arg); err == nil {
				printOptions(a.ShippingOptions())
			}
		case "ship":
			if err := a.SelectShipping(entity.ShippingOption{Method: arg}); err != nil {
				fmt.Println(err)
			}
		case "pay":
			a.SetPaymentMethod(arg)
		case "checkout":
			doCheckout(ctx, a)
		case "back":
			a.BackToStore()
		case "orders":
			printOrders(a.Orders())
		default:
			fmt.Printf("unknown command %q, try help\n", cmd)
		}

		if msg := a.Err(); msg != "" {
			fmt.Println("! " + msg)
		}
	}
}

func doAdd(ctx context.Context, a *app.App, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("usage: add <product-id>")
		return
	}
	for _, listing := range [][]entity.Product{a.Products(), a.Recommendations()} {
		for _, p := range listing {
			if p.ID == id {
				_ = a.AddItem(ctx, p)
				return
			}
		}
	}
	fmt.Println("no such product in the catalog")
}

func doCheckout(ctx context.Context, a *app.App) {
	if a.View() != entity.ViewCheckout {
		if err := a.EnterCheckout(); err != nil {
			fmt.Println(err)
			return
		}
		printCart(a.Cart())
		if sel := a.SelectedShipping(); sel != nil {
			fmt.Printf("shipping: %s (%d days) R$ %s\n", sel.Method, sel.DeliveryDays, sel.Price.StringFixed(2))
		}
		fmt.Println("run checkout again to confirm the purchase")
		return
	}
	if err := a.Checkout(ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("purchase completed")
	printOrders(a.Orders())
}

func printProducts(products []entity.Product) {
	if len(products) == 0 {
		fmt.Println("(nothing to show)")
		return
	}
	for _, p := range products {
		fmt.Printf("  #%d  %-30s R$ %s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
}

func printCart(c *entity.Cart) {
	if c.IsEmpty() {
		fmt.Println("(cart is empty)")
		return
	}
	for _, it := range c.Items {
		fmt.Printf("  #%d  %-30s x%d  R$ %s\n", it.ProductID, it.Name, it.Quantity, it.Price.StringFixed(2))
	}
	fmt.Printf("  total: R$ %s\n", c.Total.StringFixed(2))
}

func printOptions(options []entity.ShippingOption) {
	for _, o := range options {
		fmt.Printf("  %-10s %2d days  R$ %s\n", o.Method, o.DeliveryDays, o.Price.StringFixed(2))
	}
}

func printOrders(orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Println("(no orders yet)")
		return
	}
	for _, o := range orders {
		fmt.Printf("  %s  %-12s R$ %s  %s\n", o.ID, o.Status, o.Total.StringFixed(2), o.Message)
	}
}
